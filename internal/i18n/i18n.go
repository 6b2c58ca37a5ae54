// Package i18n holds the English/Hindi UI strings and the template lookup
// helper. Strings live in code rather than external files; the set is small
// and changes with the templates that use them.
package i18n

import "suratlocal/internal/models"

type entry struct {
	en string
	hi string
}

var table = map[string]entry{
	// Navigation
	"home":       {"Home", "होम"},
	"areas":      {"Areas", "क्षेत्र"},
	"categories": {"Categories", "श्रेणियाँ"},
	"search":     {"Search", "खोजें"},
	"login":      {"Login", "लॉगिन"},
	"signUp":     {"Sign Up", "साइन अप"},
	"logout":     {"Logout", "लॉगआउट"},
	"dashboard":  {"Dashboard", "डैशबोर्ड"},
	"admin":      {"Admin", "एडमिन"},

	// Hero section
	"heroTitle":         {"Discover Surat", "सूरत की खोज करें"},
	"heroSubtitle":      {"Your Complete City Guide", "आपकी पूरी शहर गाइड"},
	"heroDescription":   {"Find the best restaurants, shops, services, and more in every corner of Surat.", "सूरत के हर कोने में सर्वश्रेष्ठ रेस्तरां, दुकानें, सेवाएं और बहुत कुछ खोजें।"},
	"searchPlaceholder": {"Search businesses, areas, or categories...", "व्यवसाय, क्षेत्र, या श्रेणियाँ खोजें..."},

	// Sections
	"popularAreas":     {"Popular Areas", "लोकप्रिय क्षेत्र"},
	"browseByCategory": {"Browse by Category", "श्रेणी के अनुसार ब्राउज़ करें"},
	"featuredListings": {"Featured Listings", "विशेष लिस्टिंग"},
	"viewAll":          {"View All", "सभी देखें"},

	// Listing details
	"address":             {"Address", "पता"},
	"phone":               {"Phone", "फ़ोन"},
	"website":             {"Website", "वेबसाइट"},
	"hours":               {"Hours", "समय"},
	"reviews":             {"Reviews", "समीक्षाएं"},
	"writeReview":         {"Write a Review", "समीक्षा लिखें"},
	"addToFavorites":      {"Add to Favorites", "पसंदीदा में जोड़ें"},
	"removeFromFavorites": {"Remove from Favorites", "पसंदीदा से हटाएं"},

	// Actions
	"submitListing": {"Submit a Listing", "लिस्टिंग जमा करें"},
	"suggestEdit":   {"Suggest an Edit", "संपादन सुझाएं"},
	"approve":       {"Approve", "स्वीकृत करें"},
	"reject":        {"Reject", "अस्वीकार करें"},

	// Moderation statuses
	"pending":  {"Pending", "लंबित"},
	"approved": {"Approved", "स्वीकृत"},
	"rejected": {"Rejected", "अस्वीकृत"},

	// Footer
	"aboutUs":        {"About Us", "हमारे बारे में"},
	"contactUs":      {"Contact Us", "संपर्क करें"},
	"privacyPolicy":  {"Privacy Policy", "गोपनीयता नीति"},
	"termsOfService": {"Terms of Service", "सेवा की शर्तें"},

	// Misc
	"noResults": {"No results found", "कोई परिणाम नहीं मिला"},
	"loading":   {"Loading...", "लोड हो रहा है..."},
	"error":     {"Something went wrong", "कुछ गलत हो गया"},
	"listings":  {"listings", "लिस्टिंग"},
	"verified":  {"Verified", "सत्यापित"},
	"featured":  {"Featured", "विशेष"},
}

// T returns the translation for a key in the given language, falling back to
// English, then to the key itself so missing strings stay visible in the UI.
func T(lang, key string) string {
	e, ok := table[key]
	if !ok {
		return key
	}
	if lang == models.LangHindi && e.hi != "" {
		return e.hi
	}
	return e.en
}

// ValidLang reports whether lang is a supported language code.
func ValidLang(lang string) bool {
	return lang == models.LangEnglish || lang == models.LangHindi
}
