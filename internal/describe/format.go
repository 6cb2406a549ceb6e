package describe

// format turns a single-line description into an indented multi-line one.
// Braced bodies are broken onto one line per member; parenthesized and
// angle-bracketed lists stay inline.
//
//	Account { id: u32, friends: Vec<Account> }
//
// becomes
//
//	Account {
//	    id: u32,
//	    friends: Vec<Account>
//	}
func format(s string) string {
	const indentStep = "    "

	var (
		out       []byte
		stack     []byte // open brackets
		indent    int
		skipSpace bool
	)

	newline := func() {
		// A line never ends in spaces.
		for len(out) > 0 && out[len(out)-1] == ' ' {
			out = out[:len(out)-1]
		}
		out = append(out, '\n')
		for i := 0; i < indent; i++ {
			out = append(out, indentStep...)
		}
		skipSpace = true
	}
	top := func() byte {
		if len(stack) == 0 {
			return 0
		}
		return stack[len(stack)-1]
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if skipSpace && ch == ' ' {
			continue
		}
		skipSpace = false

		switch ch {
		case '{':
			stack = append(stack, ch)
			indent++
			out = append(out, ch)
			newline()
		case '}':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			indent--
			newline()
			out = append(out, ch)
		case '(', '[', '<':
			stack = append(stack, ch)
			out = append(out, ch)
		case ')', ']', '>':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			out = append(out, ch)
		case ',':
			out = append(out, ch)
			if top() == '{' {
				newline()
			}
		default:
			out = append(out, ch)
		}
	}

	return string(out)
}
