// Package messages loads validation message tables from YAML or JSON files.
//
// A message table is a flat mapping of field name to the message shown when
// that field fails validation:
//
//	name: Your name is required for this mission.
//	email: Correct email format is user@example.com.
//
// Load picks a parser from the file extension (.yaml, .yml or .json). LoadFS
// does the same for an fs.FS, which covers files embedded with go:embed.
// The result is a plain map[string]string; convert it with
// validator.MessagesFrom to get a typed table.
package messages
