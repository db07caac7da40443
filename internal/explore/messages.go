package explore

// messages.go maps technical errors to user-friendly messages with support
// codes. Patterns are matched case-insensitively with strings.Contains; the
// first match wins, so specific patterns come before general ones.
//
// Code ranges:
//
//	SCH001-SCH099  schema problems in uploaded or reference data
//	MATCH001-      matching outcomes
//	FILE001-       file handling
//	SES001-        session lifecycle
//	RATE001        request throttling
//	ERR000         fallback for unexpected errors

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // what happened
	Action  string // what to do about it
	Code    string // support reference code
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "missing required column",
		msg: UserMessage{
			Message: "Your file must contain a column named 'Microbe'",
			Action:  "Add a 'Microbe' column header and upload again",
			Code:    "SCH001",
		},
	},
	{
		pattern: "no match",
		msg: UserMessage{
			Message: "None of your microbes were found in the reference dataset",
			Action:  "Check spelling, or try shorter name prefixes",
			Code:    "MATCH001",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please choose a CSV, TSV, or XLSX file to upload",
			Code:    "FILE001",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The uploaded file is empty",
			Action:  "Please upload a file with a header row and data rows",
			Code:    "FILE002",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "The file is not valid delimited text",
			Action:  "Save the file as UTF-8 CSV and try again",
			Code:    "FILE003",
		},
	},
	{
		pattern: "invalid xlsx",
		msg: UserMessage{
			Message: "The file is not a readable Excel workbook",
			Action:  "Re-export the sheet as .xlsx or .csv and try again",
			Code:    "FILE004",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The file exceeds the upload size limit",
			Action:  "Upload a smaller file",
			Code:    "FILE005",
		},
	},
	{
		pattern: "session not found",
		msg: UserMessage{
			Message: "This exploring session has expired",
			Action:  "Upload your file again or reopen the full dataset",
			Code:    "SES001",
		},
	},
	{
		pattern: "too many sessions",
		msg: UserMessage{
			Message: "The server is handling too many sessions right now",
			Action:  "Please wait a moment and try again",
			Code:    "SES002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Unmatched errors fall back to the generic ERR000 message; check the
// server logs for the original error in that case.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError creates a formatted display string:
// "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
