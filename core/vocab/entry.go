// core/vocab/entry.go
package vocab

// Entry is one vocabulary record: the headword being tested and the
// meaning that counts as the correct answer. Category carries the
// part-of-speech tag for tagged inputs and is empty otherwise.
type Entry struct {
	Headword string
	Meaning  string
	Category string
}
