package matrix

import "log/slog"

// Shared slog attribute constructors used by errors and trace logging.

func groupAttr(name string) slog.Attr {
	return slog.String("group", name)
}

func entryAttr(e *Entry) slog.Attr {
	if e.Alias != "" {
		return slog.String("entry", e.Alias)
	}

	return slog.String("entry", e.Value)
}

func ruleAttr(r Rule) slog.Attr {
	return slog.Group("rule",
		slog.String("group", r.Group),
		slog.String("pattern", r.Pattern),
	)
}

func lineAttr(n int, text string) slog.Attr {
	return slog.Group("line",
		slog.Int("number", n),
		slog.String("text", text),
	)
}
