package importer

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/yubetsu/cite/internal/publication"
)

func TestFlexibleInt_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "number", input: `2024`, want: 2024},
		{name: "quoted number", input: `"2024"`, want: 2024},
		{name: "null", input: `null`, want: 0},
		{name: "empty string", input: `""`, want: 0},
		{name: "non-numeric string", input: `"twenty"`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexibleInt
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if f.Int() != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.input, f.Int(), tt.want)
			}
		})
	}
}

func TestFlexibleInt_YAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "number", input: `2024`, want: 2024},
		{name: "quoted number", input: `"2024"`, want: 2024},
		{name: "non-numeric string", input: `"twenty"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexibleInt
			err := yaml.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if f.Int() != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.input, f.Int(), tt.want)
			}
		})
	}
}

func TestParseJSON_List(t *testing.T) {
	data := []byte(`[
		{
			"authors": ["John Doe", "Jane Smith"],
			"year": 2024,
			"month": 9,
			"title": "A Study",
			"journal": "Journal of Studies",
			"volume": "34",
			"issue": 2,
			"pages": "123-145",
			"doi": "10.1000/j.jis.2024.09.001"
		},
		{
			"authors": ["Alice Johnson"],
			"year": "2025",
			"title": "Another Study",
			"journal": "Journal of Studies"
		}
	]`)

	pubs, errs := ParseJSON(data)
	if len(errs) != 0 {
		t.Fatalf("ParseJSON() errs = %v", errs)
	}
	if len(pubs) != 2 {
		t.Fatalf("ParseJSON() returned %d publications, want 2", len(pubs))
	}

	first := pubs[0]
	if first.Volume != 34 {
		t.Errorf("Volume = %d, want 34 (quoted number)", first.Volume)
	}
	if first.Citekey != "doe2024" {
		t.Errorf("Citekey = %q, want %q", first.Citekey, "doe2024")
	}
	if pubs[1].Year != 2025 {
		t.Errorf("Year = %d, want 2025 (quoted number)", pubs[1].Year)
	}
}

func TestParseJSON_SingleRecord(t *testing.T) {
	data := []byte(`{
		"authors": ["John Doe"],
		"year": 2024,
		"title": "A Study",
		"journal": "Journal of Studies"
	}`)

	pubs, errs := ParseJSON(data)
	if len(errs) != 0 {
		t.Fatalf("ParseJSON() errs = %v", errs)
	}
	if len(pubs) != 1 {
		t.Fatalf("ParseJSON() returned %d publications, want 1", len(pubs))
	}
}

func TestParseJSON_CollectsValidationErrors(t *testing.T) {
	data := []byte(`[
		{
			"authors": ["John Doe"],
			"year": 2024,
			"title": "A Study",
			"journal": "Journal of Studies"
		},
		{
			"authors": [],
			"year": 2024,
			"title": "No Authors",
			"journal": "Journal of Studies"
		}
	]`)

	pubs, errs := ParseJSON(data)
	if len(pubs) != 1 {
		t.Fatalf("ParseJSON() returned %d publications, want 1", len(pubs))
	}
	if len(errs) != 1 {
		t.Fatalf("ParseJSON() returned %d errors, want 1", len(errs))
	}
	if !errors.Is(errs[0], publication.ErrValidation) {
		t.Errorf("errs[0] = %v, want ErrValidation", errs[0])
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	pubs, errs := ParseJSON([]byte(`{not json`))
	if pubs != nil {
		t.Errorf("ParseJSON() publications = %v, want nil", pubs)
	}
	if len(errs) != 1 {
		t.Fatalf("ParseJSON() returned %d errors, want 1", len(errs))
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`- authors:
    - John Doe
    - Jane Smith
  year: 2024
  month: "9"
  title: A Study
  journal: Journal of Studies
  volume: 34
  pages: 123-145
`)

	pubs, errs := ParseYAML(data)
	if len(errs) != 0 {
		t.Fatalf("ParseYAML() errs = %v", errs)
	}
	if len(pubs) != 1 {
		t.Fatalf("ParseYAML() returned %d publications, want 1", len(pubs))
	}
	if pubs[0].Month != 9 {
		t.Errorf("Month = %d, want 9 (quoted number)", pubs[0].Month)
	}
	if pubs[0].Pages != "123-145" {
		t.Errorf("Pages = %q, want %q", pubs[0].Pages, "123-145")
	}
}

func TestParseYAML_SingleRecord(t *testing.T) {
	data := []byte(`authors: [John Doe]
year: 2024
title: A Study
journal: Journal of Studies
`)

	pubs, errs := ParseYAML(data)
	if len(errs) != 0 {
		t.Fatalf("ParseYAML() errs = %v", errs)
	}
	if len(pubs) != 1 {
		t.Fatalf("ParseYAML() returned %d publications, want 1", len(pubs))
	}
}

func TestParse_PicksDecoderByExtension(t *testing.T) {
	yamlData := []byte(`authors: [John Doe]
year: 2024
title: A Study
journal: Journal of Studies
`)
	jsonData := []byte(`{"authors": ["John Doe"], "year": 2024, "title": "A Study", "journal": "Journal of Studies"}`)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "refs.yaml", data: yamlData},
		{name: "refs.yml", data: yamlData},
		{name: "refs.json", data: jsonData},
		{name: "-", data: jsonData}, // stdin defaults to JSON
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pubs, errs := Parse(tt.data, tt.name)
			if len(errs) != 0 {
				t.Fatalf("Parse() errs = %v", errs)
			}
			if len(pubs) != 1 {
				t.Fatalf("Parse() returned %d publications, want 1", len(pubs))
			}
		})
	}
}
