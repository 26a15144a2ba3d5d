// Package i18n holds the bilingual user-facing error strings. The UI shows
// these as toasts in the active locale; no structured error codes are
// exposed.
package i18n

import "github.com/restomenu/restomenu/internal/domain"

type message struct {
	en string
	ar string
}

const (
	MsgSomethingWentWrong = "something_went_wrong"
	MsgNotFound           = "not_found"
	MsgInvalidInput       = "invalid_input"
	MsgImageTooLargeAd    = "image_too_large_ad"
	MsgImageTooLarge      = "image_too_large"
	MsgImageWrongType     = "image_wrong_type"
	MsgTooManyRequests    = "too_many_requests"
	MsgDeleteNotUndoable  = "delete_not_undoable"
)

var messages = map[string]message{
	MsgSomethingWentWrong: {
		en: "Something went wrong, please try again",
		ar: "حدث خطأ ما، يرجى المحاولة مرة أخرى",
	},
	MsgNotFound: {
		en: "The requested resource was not found",
		ar: "لم يتم العثور على المورد المطلوب",
	},
	MsgInvalidInput: {
		en: "Please check the entered data",
		ar: "يرجى التحقق من البيانات المدخلة",
	},
	MsgImageTooLargeAd: {
		en: "Image size must not exceed 5MB",
		ar: "يجب ألا يتجاوز حجم الصورة 5 ميغابايت",
	},
	MsgImageTooLarge: {
		en: "Image size must not exceed 1MB",
		ar: "يجب ألا يتجاوز حجم الصورة 1 ميغابايت",
	},
	MsgImageWrongType: {
		en: "Only image files are allowed",
		ar: "يسمح فقط بملفات الصور",
	},
	MsgTooManyRequests: {
		en: "Too many requests, please slow down",
		ar: "عدد كبير جدا من الطلبات، يرجى الإبطاء",
	},
	MsgDeleteNotUndoable: {
		en: "This action cannot be undone",
		ar: "لا يمكن التراجع عن هذا الإجراء",
	},
}

// T resolves a message key for a locale, falling back to English and then
// to the key itself so a missing entry is still visible.
func T(locale, key string) string {
	msg, ok := messages[key]
	if !ok {
		return key
	}

	if domain.NormalizeLocale(locale) == domain.LocaleAR && msg.ar != "" {
		return msg.ar
	}

	return msg.en
}
