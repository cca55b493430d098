package logging

import "context"

type contextKey string

const fieldsKey contextKey = "log_fields"

// Fields are structured attributes added to every record logged with a
// context that carries them.
type Fields struct {
	RequestID string
	SessionID string
	Component string
}

// WithFields returns a copy of ctx carrying fields merged over any already
// present. Empty values do not overwrite existing ones.
func WithFields(ctx context.Context, fields Fields) context.Context {
	merged := FieldsFrom(ctx)
	if fields.RequestID != "" {
		merged.RequestID = fields.RequestID
	}
	if fields.SessionID != "" {
		merged.SessionID = fields.SessionID
	}
	if fields.Component != "" {
		merged.Component = fields.Component
	}
	return context.WithValue(ctx, fieldsKey, merged)
}

// FieldsFrom returns the fields stored on ctx, or the zero value.
func FieldsFrom(ctx context.Context) Fields {
	if f, ok := ctx.Value(fieldsKey).(Fields); ok {
		return f
	}
	return Fields{}
}
