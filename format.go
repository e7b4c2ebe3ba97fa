package faultbook

// buildFieldsMessage appends " key=value" pairs to the message.
func buildFieldsMessage(message string, fields []any) string {
	if len(fields) == 0 {
		return message
	}

	out := make([]byte, 0, len(message)+len(fields)*20)
	out = append(out, message...)

	for i := 0; i+1 < len(fields); i += 2 {
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, truncateString(valueToString(fields[i]), MaxFieldKeyLength)...)
		out = append(out, '=')
		out = append(out, truncateString(valueToString(fields[i+1]), MaxFieldValueLength)...)
	}

	return string(out)
}
