package shell

import "github.com/simukka/recital/content"

// UI label keys.
const (
	LabelTitle        = "title"
	LabelChapters     = "chapters"
	LabelChapter      = "chapter"
	LabelPrev         = "prev"
	LabelNext         = "next"
	LabelListen       = "listen"
	LabelStopListen   = "stopListen"
	LabelDroneOn      = "droneOn"
	LabelDroneOff     = "droneOff"
	LabelDailyQuote   = "dailyQuote"
	LabelLanguage     = "language"
	LabelNoQuoteToday = "noQuote"
)

var labels = map[string]content.Text{
	LabelTitle: {
		content.English: "Bhagavad Gita",
		content.Arabic:  "بهاغافاد غيتا",
		content.Hindi:   "श्रीमद्भगवद्गीता",
		content.Spanish: "Bhagavad Gita",
	},
	LabelChapters: {
		content.English: "Chapters",
		content.Arabic:  "الفصول",
		content.Hindi:   "अध्याय",
		content.Spanish: "Capítulos",
	},
	LabelChapter: {
		content.English: "Chapter",
		content.Arabic:  "الفصل",
		content.Hindi:   "अध्याय",
		content.Spanish: "Capítulo",
	},
	LabelPrev: {
		content.English: "Previous",
		content.Arabic:  "السابق",
		content.Hindi:   "पिछला",
		content.Spanish: "Anterior",
	},
	LabelNext: {
		content.English: "Next",
		content.Arabic:  "التالي",
		content.Hindi:   "अगला",
		content.Spanish: "Siguiente",
	},
	LabelListen: {
		content.English: "Listen",
		content.Arabic:  "استمع",
		content.Hindi:   "सुनें",
		content.Spanish: "Escuchar",
	},
	LabelStopListen: {
		content.English: "Stop",
		content.Arabic:  "إيقاف",
		content.Hindi:   "रोकें",
		content.Spanish: "Detener",
	},
	LabelDroneOn: {
		content.English: "Drone on",
		content.Arabic:  "تشغيل الطنين",
		content.Hindi:   "तानपुरा चालू",
		content.Spanish: "Activar bordón",
	},
	LabelDroneOff: {
		content.English: "Drone off",
		content.Arabic:  "إيقاف الطنين",
		content.Hindi:   "तानपुरा बंद",
		content.Spanish: "Desactivar bordón",
	},
	LabelDailyQuote: {
		content.English: "Quote of the day",
		content.Arabic:  "اقتباس اليوم",
		content.Hindi:   "आज का विचार",
		content.Spanish: "Cita del día",
	},
	LabelLanguage: {
		content.English: "Language",
		content.Arabic:  "اللغة",
		content.Hindi:   "भाषा",
		content.Spanish: "Idioma",
	},
	LabelNoQuoteToday: {
		content.English: "No quote today.",
	},
}

// Label returns the UI string for key in lang, with English fallback. An
// unknown key returns the key itself.
func Label(key string, lang content.Lang) string {
	t, ok := labels[key]
	if !ok {
		return key
	}
	return t.In(lang)
}
