// Package language normalizes the locale names accepted for word collation.
//
// Users may write a locale the POSIX way (fr_FR.UTF-8), as a BCP 47 tag
// (fr-FR), as an ISO 639-2 code (fra, fre), or as an English word (french).
// NormalizeLocale folds all of these into a BCP 47 string that the collator
// can parse.
package language
