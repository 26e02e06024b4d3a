// Package gemini implements [neoxbridge.Completer] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK and issues one GenerateContent
// call per completion.
package gemini

const (
	defaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 1024
)
