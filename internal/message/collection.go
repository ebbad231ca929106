package message

// The helpers below never modify their input slice. Every change yields a new
// backing array so a list holding the previous snapshot keeps seeing it as it was.

// Insert returns list with batch added at the front or the back.
// The relative order of batch is preserved.
func Insert(list, batch []Message, atFront bool) []Message {
	out := make([]Message, 0, len(list)+len(batch))
	if atFront {
		out = append(out, batch...)
		return append(out, list...)
	}
	out = append(out, list...)
	return append(out, batch...)
}

// Remove returns list without the message whose ID is id. When no message
// matches, the result has the same contents and order as list.
func Remove(list []Message, id string) []Message {
	out := make([]Message, 0, len(list))
	for _, m := range list {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// IndexOf returns the position of the message with the given id, or -1.
func IndexOf(list []Message, id string) int {
	for i, m := range list {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// HeadID returns the id of the first message, or "" for an empty list.
func HeadID(list []Message) string {
	if len(list) == 0 {
		return ""
	}
	return list[0].ID
}

// DuplicateID returns the first id that occurs more than once, or "".
func DuplicateID(list []Message) string {
	seen := make(map[string]struct{}, len(list))
	for _, m := range list {
		if _, ok := seen[m.ID]; ok {
			return m.ID
		}
		seen[m.ID] = struct{}{}
	}
	return ""
}
