package stack

// closers maps every closing bracket to its opener.
var closers = map[rune]rune{')': '(', ']': '[', '}': '{'}

// Balanced reports whether every bracket in s is closed by the matching
// bracket in the right order. Characters other than ()[]{} are ignored.
// Complexity: O(n) time, O(depth) space.
func Balanced(s string) bool {
	open := NewLinked(nil)
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			open.Push(int(r))
		case ')', ']', '}':
			top, err := open.Pop()
			if err != nil || rune(top) != closers[r] {
				return false // nothing to close, or the wrong opener
			}
		}
	}

	return open.Empty()
}
