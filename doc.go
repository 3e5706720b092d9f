// Package jsonfixer turns relaxed JSON into standard JSON while it is being read.
//
// Relaxed JSON is JSON with comments and trailing commas, as often found in configuration files:
//     {
//     	// Line comments are removed together with their newline
//     	"name": "jsonfixer",
//
//     	/* Block comments
//     	   can span many lines */
//     	"tags": [
//     		"json",
//     		"comments", // This trailing comma will be removed
//     	],
//
//     	// Strings are never changed
//     	"url": "https://example.com/*not-a-comment*/",
//     }
//
// Reader wraps any io.Reader and removes comments and trailing commas from it on the fly,
// one byte at a time and without buffering the document. Its output can be fed to encoding/json
// or any other JSON parser. NewDecoder and Unmarshal do exactly that.
//
// Nothing else is changed: unquoted keys, single quotes and other extensions are passed through,
// and so is malformed JSON. It is up to the JSON parser to reject it.
package jsonfixer
