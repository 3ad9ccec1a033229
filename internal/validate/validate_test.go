package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	tests := []struct {
		name  string
		value string
		rule  Rule
		want  string
	}{
		{
			name:  "required empty",
			value: "",
			rule:  Rule{Required: true},
			want:  "This field is required",
		},
		{
			name:  "required whitespace only",
			value: "   ",
			rule:  Rule{Required: true},
			want:  "This field is required",
		},
		{
			name:  "required wins over minLength",
			value: "",
			rule:  Rule{Required: true, MinLength: 2},
			want:  "This field is required",
		},
		{
			name:  "minLength failure",
			value: "a",
			rule:  Rule{MinLength: 2},
			want:  "Minimum 2 characters required",
		},
		{
			name:  "minLength wins over maxLength ordering",
			value: "a",
			rule:  Rule{MinLength: 3, MaxLength: 2},
			want:  "Minimum 3 characters required",
		},
		{
			name:  "maxLength failure",
			value: "abcdef",
			rule:  Rule{MaxLength: 5},
			want:  "Maximum 5 characters allowed",
		},
		{
			name:  "valid email",
			value: "asha@example.com",
			rule:  Rule{Required: true, Pattern: PatternEmail},
			want:  "",
		},
		{
			name:  "invalid email",
			value: "asha@example",
			rule:  Rule{Required: true, Pattern: PatternEmail},
			want:  "Invalid email address",
		},
		{
			name:  "valid phone plain digits",
			value: "9876543210",
			rule:  Rule{Required: true, Pattern: PatternPhone},
			want:  "",
		},
		{
			name:  "valid phone with separators",
			value: "+91 (98765) 432-10",
			rule:  Rule{Required: true, Pattern: PatternPhone},
			want:  "",
		},
		{
			name:  "phone too short",
			value: "98765",
			rule:  Rule{Required: true, Pattern: PatternPhone},
			want:  "Invalid phone number",
		},
		{
			name:  "phone with letters",
			value: "98765abc43",
			rule:  Rule{Required: true, Pattern: PatternPhone},
			want:  "Invalid phone number",
		},
		{
			name:  "valid url",
			value: "https://spiceterra.example",
			rule:  Rule{Pattern: PatternURL},
			want:  "",
		},
		{
			name:  "url without scheme",
			value: "spiceterra.example",
			rule:  Rule{Pattern: PatternURL},
			want:  "Invalid format",
		},
		{
			name:  "out-of-range pattern kind acts as no constraint",
			value: "anything at all",
			rule:  Rule{Pattern: PatternKind(99)},
			want:  "",
		},
		{
			name:  "custom runs after pattern passes",
			value: "asha@example.com",
			rule: Rule{
				Pattern: PatternEmail,
				Custom: func(value string) string {
					return "domain not allowed"
				},
			},
			want: "domain not allowed",
		},
		{
			name:  "pattern failure short-circuits custom",
			value: "not-an-email",
			rule: Rule{
				Pattern: PatternEmail,
				Custom: func(value string) string {
					return "should never be seen"
				},
			},
			want: "Invalid email address",
		},
		{
			name:  "no rules means always valid",
			value: "",
			rule:  Rule{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Field(tt.value, tt.rule))
		})
	}
}

func TestAllEvaluatesEveryField(t *testing.T) {
	rules := map[string]Rule{
		"name":  {Required: true, MinLength: 2},
		"email": {Required: true, Pattern: PatternEmail},
		"notes": {},
	}
	values := map[string]string{
		"name": "",
		// email intentionally missing from values
	}

	errs := All(values, rules)

	assert.Len(t, errs, 3)
	assert.Equal(t, "This field is required", errs["name"])
	assert.Equal(t, "This field is required", errs["email"])
	assert.Empty(t, errs["notes"])
	assert.False(t, Valid(errs))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(map[string]string{}))
	assert.True(t, Valid(map[string]string{"name": "", "email": ""}))
	assert.False(t, Valid(map[string]string{"name": "", "email": "Invalid email address"}))
}
