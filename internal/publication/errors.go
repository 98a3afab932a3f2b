package publication

import "errors"

// ErrValidation indicates a missing or empty mandatory field at record
// construction. The APA, MLA and AMA assemblers also wrap it when handed an
// encoding outside "raw" and "html".
var ErrValidation = errors.New("invalid publication")
