// core/exam/question.go
package exam

// DistractorCount is the number of wrong answers per question; with
// the correct meaning that makes four options, lettered a-d.
const DistractorCount = 3

// Question is one assembled multiple-choice item: the headword being
// asked, four shuffled options, and the letter of the correct one.
type Question struct {
	Number   int
	Headword string
	Options  []string
	Answer   byte // 'a'..'d'
}
