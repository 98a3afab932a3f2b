package main

// Exit codes returned by the cite CLI.
const (
	ExitSuccess = 0 // Success
	ExitError   = 1 // General error (invalid arguments, runtime failure)
	ExitUsage   = 2 // Usage error (unknown style or encoding)
	ExitData    = 3 // Data error (unreadable or invalid record file)
)
