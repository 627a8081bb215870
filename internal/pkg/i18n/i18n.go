// Package i18n holds the fixed message catalog for user-facing strings.
// Unknown languages fall back to English; unknown keys fall back to the
// key itself so a missing translation never blanks a response.
package i18n

import "fmt"

const DefaultLanguage = "en"

var catalog = map[string]map[string]string{
	"en": {
		"welcome":               "Hello! What ocean data are you curious about?",
		"no_data":               "The query returned no tabular data to plot.",
		"no_summary":            "No summary returned.",
		"float_not_found":       "No data found for Float ID '%s'. Please query for it first.",
		"destination_not_found": "Destination port '%s' not found in the available port list.",
		"emergency_header":      "Emergency Medical Alert",
		"emergency_no_location": "Please search for a Float ID first to determine a location.",
		"summary_position":      "Latest reported position for float %s.",
		"summary_profile":       "Profile measurements for float %s, ordered by pressure.",
		"summary_avg_temp":      "Average temperature between %s and %s.",
		"summary_equator":       "Profiles recorded near the equator (|latitude| <= 5).",
		"summary_semantic":      "Floats most relevant to your question.",
	},
	"es": {
		"welcome":               "¡Hola! ¿Qué datos oceánicos le interesan?",
		"no_data":               "La consulta no devolvió datos tabulares para trazar.",
		"no_summary":            "No se devolvió ningún resumen.",
		"float_not_found":       "No se encontraron datos para el ID de flotador '%s'. Por favor, primero haga una consulta sobre él.",
		"destination_not_found": "El puerto de destino '%s' no se encontró en la lista de puertos disponibles.",
		"emergency_header":      "Alerta Médica de Emergencia",
		"emergency_no_location": "Busque primero una ID de Flotador para determinar una ubicación.",
		"summary_position":      "Última posición informada del flotador %s.",
		"summary_profile":       "Mediciones de perfil del flotador %s, ordenadas por presión.",
		"summary_avg_temp":      "Temperatura promedio entre %s y %s.",
		"summary_equator":       "Perfiles registrados cerca del ecuador (|latitud| <= 5).",
		"summary_semantic":      "Flotadores más relevantes para su pregunta.",
	},
	"fr": {
		"welcome":               "Bonjour! Quelles données océaniques vous intéressent?",
		"no_data":               "La requête n'a retourné aucune donnée tabulaire à tracer.",
		"no_summary":            "Aucun résumé retourné.",
		"float_not_found":       "Aucune donnée trouvée pour l'ID de Flotteur '%s'. Veuillez d'abord le rechercher.",
		"destination_not_found": "Le port de destination '%s' est introuvable dans la liste des ports disponibles.",
		"emergency_header":      "Alerte Médicale d'Urgence",
		"emergency_no_location": "Veuillez d'abord rechercher un ID de Flotteur pour déterminer une position.",
		"summary_position":      "Dernière position signalée du flotteur %s.",
		"summary_profile":       "Mesures de profil du flotteur %s, triées par pression.",
		"summary_avg_temp":      "Température moyenne entre %s et %s.",
		"summary_equator":       "Profils enregistrés près de l'équateur (|latitude| <= 5).",
		"summary_semantic":      "Flotteurs les plus pertinents pour votre question.",
	},
	"hi": {
		"welcome":               "नमस्ते! आप किस महासागर डेटा के बारे में उत्सुक हैं?",
		"no_data":               "क्वेरी ने प्लॉट करने के लिए कोई सारणीबद्ध डेटा वापस नहीं किया।",
		"no_summary":            "कोई सारांश नहीं मिला।",
		"float_not_found":       "फ्लोट आईडी '%s' के लिए कोई डेटा नहीं मिला। कृपया पहले इसके लिए एक क्वेरी चलाएं।",
		"destination_not_found": "गंतव्य बंदरगाह '%s' उपलब्ध बंदरगाह सूची में नहीं मिला।",
		"emergency_header":      "आपातकालीन चिकित्सा चेतावनी",
		"emergency_no_location": "स्थान निर्धारित करने के लिए कृपया पहले एक फ्लोट आईडी खोजें।",
		"summary_position":      "फ्लोट %s की नवीनतम रिपोर्ट की गई स्थिति।",
		"summary_profile":       "फ्लोट %s के प्रोफ़ाइल माप, दबाव के क्रम में।",
		"summary_avg_temp":      "%s और %s के बीच औसत तापमान।",
		"summary_equator":       "भूमध्य रेखा के पास दर्ज प्रोफ़ाइल (|अक्षांश| <= 5)।",
		"summary_semantic":      "आपके प्रश्न के लिए सबसे प्रासंगिक फ्लोट।",
	},
	"kn": {
		"welcome":               "ನಮಸ್ಕಾರ! ನಿಮಗೆ ಯಾವ ಸಾಗರ ದತ್ತಾಂಶದ ಬಗ್ಗೆ ಕುತೂಹಲವಿದೆ?",
		"no_data":               "ಪ್ರಶ್ನೆಯು ಪ್ಲಾಟ್ ಮಾಡಲು ಯಾವುದೇ ಟ್ಯಾಬ್ಯುಲರ್ ಡೇಟಾವನ್ನು ಹಿಂತಿರುಗಿಸಲಿಲ್ಲ.",
		"no_summary":            "ಯಾವುದೇ ಸಾರಾಂಶ ಹಿಂತಿರುಗಿಸಲಾಗಿಲ್ಲ.",
		"float_not_found":       "ಫ್ಲೋಟ್ ಐಡಿ '%s' ಗಾಗಿ ಯಾವುದೇ ಡೇಟಾ ಕಂಡುಬಂದಿಲ್ಲ. ದಯವಿಟ್ಟು ಮೊದಲು ಅದಕ್ಕಾಗಿ ಒಂದು ಪ್ರಶ್ನೆಯನ್ನು ರನ್ ಮಾಡಿ.",
		"destination_not_found": "ಗಮ್ಯಸ್ಥಾನ ಬಂದರು '%s' ಲಭ್ಯವಿರುವ ಬಂದರು ಪಟ್ಟಿಯಲ್ಲಿ ಕಂಡುಬಂದಿಲ್ಲ.",
		"emergency_header":      "ತುರ್ತು ವೈದ್ಯಕೀಯ ಎಚ್ಚರಿಕೆ",
		"emergency_no_location": "ಸ್ಥಳವನ್ನು ನಿರ್ಧರಿಸಲು ದಯವಿಟ್ಟು ಮೊದಲು ಫ್ಲೋಟ್ ಐಡಿಯನ್ನು ಹುಡುಕಿ.",
		"summary_position":      "ಫ್ಲೋಟ್ %s ನ ಇತ್ತೀಚಿನ ವರದಿಯಾದ ಸ್ಥಾನ.",
		"summary_profile":       "ಫ್ಲೋಟ್ %s ನ ಪ್ರೊಫೈಲ್ ಅಳತೆಗಳು, ಒತ್ತಡದ ಕ್ರಮದಲ್ಲಿ.",
		"summary_avg_temp":      "%s ಮತ್ತು %s ನಡುವಿನ ಸರಾಸರಿ ತಾಪಮಾನ.",
		"summary_equator":       "ಸಮಭಾಜಕದ ಬಳಿ ದಾಖಲಾದ ಪ್ರೊಫೈಲ್‌ಗಳು (|ಅಕ್ಷಾಂಶ| <= 5).",
		"summary_semantic":      "ನಿಮ್ಮ ಪ್ರಶ್ನೆಗೆ ಹೆಚ್ಚು ಸಂಬಂಧಿಸಿದ ಫ್ಲೋಟ್‌ಗಳು.",
	},
}

// Supported reports whether a language code has a catalog entry.
func Supported(lang string) bool {
	_, ok := catalog[lang]
	return ok
}

// T returns the message for key in lang.
func T(lang, key string) string {
	msgs, ok := catalog[lang]
	if !ok {
		msgs = catalog[DefaultLanguage]
	}
	if msg, ok := msgs[key]; ok {
		return msg
	}
	if msg, ok := catalog[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// Tf formats a parameterized message.
func Tf(lang, key string, args ...interface{}) string {
	return fmt.Sprintf(T(lang, key), args...)
}
