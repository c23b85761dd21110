package format

import "strings"

// Таблица замены латинских букв на кириллические двойники.
// Студенты часто набирают код группы не переключив раскладку —
// перед любым обращением к API название приводится к кириллице.
var latinToCyrillic = map[rune]rune{
	'A': 'А', 'a': 'а',
	'B': 'В', 'b': 'в',
	'E': 'Е', 'e': 'е',
	'K': 'К', 'k': 'к',
	'M': 'М', 'm': 'м',
	'H': 'Н', 'h': 'н',
	'O': 'О', 'o': 'о',
	'P': 'Р', 'p': 'р',
	'C': 'С', 'c': 'с',
	'T': 'Т', 't': 'т',
	'Y': 'У', 'y': 'у',
	'X': 'Х', 'x': 'х',
	'I': 'І', 'i': 'і',
	'V': 'В', 'v': 'в',
	'S': 'С', 's': 'с',
	'N': 'Н', 'n': 'н',
	'R': 'Р', 'r': 'р',
}

// NormalizeGroupName заменяет латинские буквы в коде группы на кириллические.
// Идемпотентна: чисто кириллическое название не меняется.
func NormalizeGroupName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.TrimSpace(name) {
		if c, ok := latinToCyrillic[r]; ok {
			r = c
		}
		b.WriteRune(r)
	}
	return b.String()
}
