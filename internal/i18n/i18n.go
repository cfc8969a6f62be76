// Package i18n renders user-facing engine messages in both supported
// languages. Recommendation rationales are always produced bilingually,
// so the message table is compiled in rather than loaded from locale
// files: a missing key is a programming error, not a deployment one.
package i18n

import (
	"fmt"
	"strings"
)

// Language is a supported rationale language.
type Language string

const (
	LangEnglish Language = "en"
	LangRussian Language = "ru"
	DefaultLang Language = LangEnglish
)

// messages maps a key to its translation per language. Every key MUST
// have both languages; TestMessageCoverage enforces it.
var messages = map[string]map[Language]string{
	"rationale.skip.ill": {
		LangEnglish: "You reported feeling ill today, so rest is the right call.",
		LangRussian: "Вы сообщили о плохом самочувствии, поэтому сегодня лучше отдохнуть.",
	},
	"rationale.skip.pain": {
		LangEnglish: "Your pain level is high (%d/10); training through it risks injury.",
		LangRussian: "Уровень боли высокий (%d/10): тренировка через боль грозит травмой.",
	},
	"rationale.skip.low_score": {
		LangEnglish: "Your readiness score is very low (%d/10); a rest day will do more than a forced session.",
		LangRussian: "Показатель готовности очень низкий (%d/10): день отдыха даст больше, чем тренировка через силу.",
	},
	"rationale.active_recovery.readiness": {
		LangEnglish: "Readiness points to recovery work today, so the plan stays light and restorative.",
		LangRussian: "Готовность указывает на восстановительный день, поэтому план лёгкий и щадящий.",
	},
	"rationale.active_recovery.light_low_energy": {
		LangEnglish: "Light readiness combined with low energy: easy movement beats a hard session today.",
		LangRussian: "Низкая готовность и мало энергии: сегодня лёгкое движение полезнее тяжёлой тренировки.",
	},
	"rationale.workout.readiness": {
		LangEnglish: "Today's readiness is %s, which supports a normal workout.",
		LangRussian: "Сегодняшняя готовность — %s, это позволяет полноценную тренировку.",
	},
	"rationale.workout.no_checkin": {
		LangEnglish: "No readiness check-in today, assuming a moderate day.",
		LangRussian: "Сегодня нет отметки о готовности, считаем день умеренным.",
	},
	"rationale.duration.quick": {
		LangEnglish: "With %d minutes available, a dense quick workout fits best.",
		LangRussian: "За %d минут лучше всего подойдёт короткая плотная тренировка.",
	},
	"rationale.duration.full": {
		LangEnglish: "%d minutes is enough for a full workout with proper rest between sets.",
		LangRussian: "%d минут хватает на полноценную тренировку с нормальным отдыхом между подходами.",
	},
	"rationale.muscles.fresh": {
		LangEnglish: "Targeting %s: these muscle groups are the most recovered right now.",
		LangRussian: "Цель — %s: эти мышечные группы сейчас восстановлены лучше всего.",
	},
	"rationale.muscles.all_fatigued": {
		LangEnglish: "All tracked muscle groups are still recovering, so the least fatigued ones were picked.",
		LangRussian: "Все отслеживаемые группы мышц ещё восстанавливаются, поэтому выбраны наименее уставшие.",
	},
	"rationale.format": {
		LangEnglish: "The %s format matches your time budget and training location.",
		LangRussian: "Формат %s соответствует вашему времени и месту тренировки.",
	},
	"rationale.fallback.bodyweight": {
		LangEnglish: "Few catalog exercises matched your location, so a bodyweight full-body set was composed instead.",
		LangRussian: "Под ваше место тренировки подошло мало упражнений, поэтому составлен комплекс с собственным весом на всё тело.",
	},
}

// T returns the translation for a key in the given language, falling
// back to English and finally to the key itself.
func T(key string, lang Language) string {
	if entry, ok := messages[key]; ok {
		if text, ok := entry[lang]; ok {
			return text
		}
		if text, ok := entry[DefaultLang]; ok {
			return text
		}
	}
	return key
}

// Tf returns the formatted translation for a key.
func Tf(key string, lang Language, args ...interface{}) string {
	template := T(key, lang)
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

// Pair renders a key in both languages at once.
func Pair(key string, args ...interface{}) (en, ru string) {
	return Tf(key, LangEnglish, args...), Tf(key, LangRussian, args...)
}

// ParseLanguage normalizes a stored language preference.
func ParseLanguage(lang string) Language {
	switch Language(strings.ToLower(lang)) {
	case LangRussian:
		return LangRussian
	default:
		return DefaultLang
	}
}

// Keys returns every message key. Used by tests to verify coverage.
func Keys() []string {
	keys := make([]string, 0, len(messages))
	for k := range messages {
		keys = append(keys, k)
	}
	return keys
}
