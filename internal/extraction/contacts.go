package extraction

import (
	"regexp"
	"strings"
)

// Headers that open the contact section; the Telkom block comes first, the
// customer block follows it.
var contactAnchorHeaders = []string{
	"CONTACT PERSON",
	"NARAHUBUNG",
	"PIC",
}

var (
	reEmailShape = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	rePhoneShape = regexp.MustCompile(`^\+?[0-9][0-9\s().\-]{6,}$`)
)

type contactField int

const (
	fieldNone contactField = iota
	fieldName
	fieldTitle
	fieldEmail
	fieldPhone
)

var contactLabelVariants = map[contactField][]string{
	fieldName:  {"Nama", "Name"},
	fieldTitle: {"Jabatan", "Title"},
	fieldEmail: {"Email", "E-mail", "Alamat Email"},
	fieldPhone: {"Telepon", "Telp", "No. Telp", "No. HP", "HP", "No. Handphone"},
}

// extractContacts locates the contact anchor section, then the inner TELKOM
// sub-anchor, and reads the field-label state machine twice in sequence: the
// Telkom block first, then the remaining tokens as the customer block.
func extractContacts(m *Matcher) (telkom, customer *ContactPerson) {
	anchor := -1
	for _, header := range contactAnchorHeaders {
		if idx := m.FindContaining(header, 0); idx >= 0 {
			anchor = idx
			break
		}
	}
	if anchor < 0 {
		return nil, nil
	}

	start := anchor + 1
	if telkomIdx := m.FindContaining("TELKOM", anchor); telkomIdx >= 0 {
		start = telkomIdx + 1
	}

	first, next := readContactBlock(m, start)
	second, _ := readContactBlock(m, next)
	if first.IsEmpty() {
		first = nil
	}
	if second.IsEmpty() {
		second = nil
	}
	return first, second
}

// readContactBlock runs the label state machine from start. It holds a "last
// seen label" and fills the matching field from the next well-shaped token,
// with a one-token lookahead before the label state resets unrecorded.
// Seeing a new name label while two or more fields are already filled means
// the next block has begun; the read stops there and returns that index.
func readContactBlock(m *Matcher, start int) (*ContactPerson, int) {
	contact := &ContactPerson{}
	last := fieldNone
	misses := 0
	filled := 0

	for i := max(start, 0); i < m.Len(); i++ {
		tok := strings.TrimSpace(m.Token(i))
		if tok == "" {
			continue
		}

		if kind := contactLabelKind(tok); kind != fieldNone {
			if kind == fieldName && filled >= 2 {
				return contact, i
			}
			last = kind
			misses = 0
			continue
		}

		if last == fieldNone {
			continue
		}
		if value, ok := contactValue(last, tok); ok {
			switch last {
			case fieldName:
				contact.Name = value
			case fieldTitle:
				contact.Title = value
			case fieldEmail:
				contact.Email = value
			case fieldPhone:
				contact.Phone = value
			}
			filled++
			last = fieldNone
			misses = 0
			continue
		}
		misses++
		if misses >= 2 {
			last = fieldNone
			misses = 0
		}
	}
	return contact, m.Len()
}

func contactLabelKind(tok string) contactField {
	folded := foldText(strings.TrimSuffix(strings.TrimSpace(tok), ":"))
	for kind, variants := range contactLabelVariants {
		for _, v := range variants {
			if folded == foldText(v) {
				return kind
			}
		}
	}
	return fieldNone
}

// contactValue validates a candidate token against the shape the label
// demands. Free-text fields reject anything that looks like another label
// or an amount rather than forcing it into the field.
func contactValue(kind contactField, tok string) (string, bool) {
	tok = strings.Trim(strings.TrimSpace(tok), ":")
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return "", false
	}
	switch kind {
	case fieldEmail:
		if reEmailShape.MatchString(tok) {
			return tok, true
		}
		return "", false
	case fieldPhone:
		if rePhoneShape.MatchString(tok) {
			return tok, true
		}
		return "", false
	default:
		if contactLabelKind(tok) != fieldNone || LooksLikeAmount(tok) {
			return "", false
		}
		return tok, true
	}
}
