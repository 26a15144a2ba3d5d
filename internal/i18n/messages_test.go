package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Something went wrong, please try again", T("en", MsgSomethingWentWrong))
	assert.Equal(t, "حدث خطأ ما، يرجى المحاولة مرة أخرى", T("ar", MsgSomethingWentWrong))

	// unsupported locales fall back to English
	assert.Equal(t, "Something went wrong, please try again", T("fr", MsgSomethingWentWrong))

	// a missing key stays visible instead of returning nothing
	assert.Equal(t, "no_such_key", T("en", "no_such_key"))
}

func TestEveryMessageHasBothLanguages(t *testing.T) {
	for key, msg := range messages {
		assert.NotEmpty(t, msg.en, "missing English text for %s", key)
		assert.NotEmpty(t, msg.ar, "missing Arabic text for %s", key)
	}
}
