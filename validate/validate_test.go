package validate

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Builtins(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		value any
		ok    bool
	}{
		{"required empty", Required(), "", false},
		{"required spaces", Required(), "   ", false},
		{"required present", Required(), "x", true},
		{"minlength short", MinLength(3), "ab", false},
		{"minlength exact", MinLength(3), "abc", true},
		{"minlength skips empty", MinLength(3), "", true},
		{"maxlength long", MaxLength(2), "abc", false},
		{"email bad", Email(), "not-an-email", false},
		{"email good", Email(), "user@example.com", true},
		{"email skips empty", Email(), "", true},
		{"url bad", URL(), "not a url", false},
		{"url good", URL(), "https://example.com/x", true},
		{"numeric bad", Numeric(), "12x", false},
		{"numeric good", Numeric(), "12.5", true},
		{"min below", Min(10), "5", false},
		{"min above", Min(10), "15", true},
		{"max above", Max(10), "15", false},
		{"pattern miss", Pattern(regexp.MustCompile(`^\d+$`), "digits only"), "a1", false},
		{"pattern hit", Pattern(regexp.MustCompile(`^\d+$`), "digits only"), "11", true},
		{"custom", Custom(func(v any) bool { return v == "yes" }, "must be yes"), "no", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.rule(tt.value)
			assert.Equal(t, tt.ok, res.OK)
			if !tt.ok {
				assert.NotEmpty(t, res.Message)
			}
		})
	}
}

func TestRules_Matches(t *testing.T) {
	password := NewField()
	password.SetValue("secret")
	confirm := NewField(Matches(password, "Passwords must match"))

	confirm.SetValue("different")
	assert.False(t, confirm.Valid())
	confirm.SetValue("secret")
	assert.True(t, confirm.Valid())
}

func TestField_Transitions(t *testing.T) {
	f := NewField(Required())
	assert.False(t, f.Dirty())
	assert.False(t, f.Touched())
	assert.True(t, f.Valid(), "pristine field shows no errors yet")

	f.SetValue("")
	assert.True(t, f.Dirty())
	assert.False(t, f.Valid())
	assert.False(t, f.ShowError(), "error text waits for touch")

	f.Touch()
	assert.True(t, f.ShowError())

	f.SetValue("hello")
	assert.True(t, f.Valid())
	assert.False(t, f.ShowError())
}

func TestField_TouchValidatesPristine(t *testing.T) {
	f := NewField(Required())
	f.Touch()
	assert.False(t, f.Valid(), "blur on a never-dirtied required field must validate")
}

func TestField_SuppressedValidation(t *testing.T) {
	f := NewField(Required())
	f.SetValue("", true)
	assert.True(t, f.Valid(), "suppressed SetValue must not validate")
}

func TestField_ErrorsInRuleOrder(t *testing.T) {
	f := NewField(
		Custom(func(any) bool { return false }, "first"),
		Custom(func(any) bool { return false }, "second"),
	)
	f.Validate()
	assert.Equal(t, []string{"first", "second"}, f.Errors())
}

func TestForm_ValidateRoundTrip(t *testing.T) {
	form := NewForm().
		AddField("email", NewField(Required(), Email()))

	form.Field("email").SetValue("not-an-email")
	assert.False(t, form.Validate())
	assert.NotEmpty(t, form.Errors()["email"])

	form.Field("email").SetValue("user@example.com")
	assert.True(t, form.Validate())
	assert.Empty(t, form.Errors())
}

func TestForm_ValidateEvaluatesAllFields(t *testing.T) {
	form := NewForm().
		AddField("a", NewField(Required())).
		AddField("b", NewField(Required()))

	assert.False(t, form.Validate())
	// No short-circuit: both fields were touched and carry errors.
	assert.True(t, form.Field("a").ShowError())
	assert.True(t, form.Field("b").ShowError())
}

func TestForm_HandleSubmit(t *testing.T) {
	form := NewForm().AddField("name", NewField(Required()))
	form.Field("name").SetValue("banda")

	var got map[string]any
	submitted, err := form.HandleSubmit(context.Background(), func(_ context.Context, values map[string]any) error {
		assert.True(t, form.Submitting())
		got = values
		return nil
	})
	require.NoError(t, err)
	assert.True(t, submitted)
	assert.Equal(t, "banda", got["name"])
	assert.False(t, form.Submitting())
}

func TestForm_HandleSubmitClearsFlagOnError(t *testing.T) {
	form := NewForm().AddField("name", NewField(Required()))
	form.Field("name").SetValue("x")

	boom := errors.New("boom")
	submitted, err := form.HandleSubmit(context.Background(), func(context.Context, map[string]any) error {
		return boom
	})
	assert.True(t, submitted)
	assert.ErrorIs(t, err, boom)
	assert.False(t, form.Submitting())
}

func TestForm_HandleSubmitSkipsInvalid(t *testing.T) {
	form := NewForm().AddField("name", NewField(Required()))
	called := false
	submitted, err := form.HandleSubmit(context.Background(), func(context.Context, map[string]any) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, submitted)
	assert.False(t, called)
}

func TestAccepted(t *testing.T) {
	assert.True(t, Accepted("photo.PNG", []string{"image"}))
	assert.False(t, Accepted("photo.png", []string{"video"}))
	assert.True(t, Accepted("notes.csv", []string{".csv", "image"}))
	assert.True(t, Accepted("anything.bin", nil), "empty accept list accepts everything")
	assert.True(t, Accepted("paper.pdf", []string{"document"}))
}
