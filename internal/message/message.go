// Package message holds the two fixed texts the hello binary emits.
package message

const (
	// Standard goes to stdout.
	Standard = "Hello World!\n"
	// Warning goes to stderr.
	Warning = "Foo! Bar!\n"
)
