// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package language

var english = table{
	code:               "en",
	name:               "English",
	sentenceBeginnings: true,
	firstWords: []string{
		// Articles:
		"the", "a", "an",
		// Numbers 1-10:
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
		// Demonstratives:
		"this", "that", "these", "those",
	},
	functionWords: []string{
		"the", "a", "an", "and", "or", "but", "nor", "so", "yet",
		"of", "in", "on", "at", "to", "for", "with", "by", "from", "about", "as", "into",
		"like", "through", "after", "over", "between", "out", "against", "during",
		"without", "before", "under", "around", "among", "up", "down", "off",
		"is", "are", "was", "were", "be", "been", "being", "am",
		"have", "has", "had", "do", "does", "did", "will", "would", "shall", "should",
		"can", "could", "may", "might", "must",
		"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
		"my", "your", "his", "its", "our", "their",
		"this", "that", "these", "those", "which", "who", "whom", "what", "whose",
		"not", "no", "if", "then", "than", "there", "here", "also", "very", "just",
	},
	abbreviations: []string{
		"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "vs", "e.g", "i.e",
		"a.m", "p.m", "fig", "approx", "dept", "inc", "ltd", "corp", "u.s",
	},
}

var german = table{
	code:               "de",
	name:               "German",
	sentenceBeginnings: true,
	firstWords: []string{
		// Definite articles:
		"das", "dem", "den", "der", "des", "die",
		// Indefinite articles:
		"ein", "eine", "einem", "einen", "einer", "eines",
		// Numbers 1-10:
		"eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun", "zehn",
		// Demonstratives:
		"dieser", "diese", "dieses", "diesem", "diesen",
		"jener", "jene", "jenes", "jenem", "jenen",
	},
	functionWords: []string{
		"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen", "einem", "einer",
		"und", "oder", "aber", "denn", "sondern",
		"in", "im", "an", "am", "auf", "für", "mit", "von", "vom", "zu", "zum", "zur",
		"bei", "aus", "nach", "über", "unter", "vor", "durch", "gegen", "ohne",
		"ist", "sind", "war", "waren", "wird", "werden", "hat", "haben", "sein",
		"nicht", "auch", "es", "er", "sie", "wir", "ich", "du", "ihr",
		"dass", "als", "wie", "so", "noch", "nur", "sich",
	},
	abbreviations: []string{
		"z.b", "bzw", "usw", "ca", "d.h", "u.a", "nr", "dr", "prof", "vgl", "evtl", "ggf", "inkl", "bspw",
	},
}

var dutch = table{
	code:               "nl",
	name:               "Dutch",
	sentenceBeginnings: true,
	firstWords: []string{
		// Articles:
		"de", "het", "een",
		// Numbers 1-10:
		"één", "twee", "drie", "vier", "vijf", "zes", "zeven", "acht", "negen", "tien",
		// Demonstratives:
		"deze", "dit", "die", "dat",
	},
	functionWords: []string{
		"de", "het", "een", "en", "of", "maar", "want",
		"in", "op", "aan", "met", "van", "voor", "bij", "naar", "uit", "over", "door", "tot",
		"is", "zijn", "was", "waren", "wordt", "worden", "heeft", "hebben",
		"niet", "ook", "er", "hij", "zij", "wij", "ik", "je", "jij",
		"dat", "die", "dit", "deze", "als", "om", "te",
	},
	abbreviations: []string{
		"bijv", "d.w.z", "o.a", "enz", "dhr", "mevr", "nr", "m.b.t", "i.p.v",
	},
}

var swedish = table{
	code:               "sv",
	name:               "Swedish",
	sentenceBeginnings: true,
	firstWords: []string{
		// Articles:
		"en", "ett", "den", "det", "de",
		// Numbers 1-10:
		"två", "tre", "fyra", "fem", "sex", "sju", "åtta", "nio", "tio",
		// Demonstratives:
		"denna", "detta", "dessa",
	},
	functionWords: []string{
		"och", "eller", "men", "i", "på", "av", "för", "med", "till", "från", "om",
		"är", "var", "har", "hade", "blir", "som", "att",
		"det", "den", "de", "en", "ett", "inte",
		"jag", "du", "han", "hon", "vi", "ni",
	},
	abbreviations: []string{
		"t.ex", "bl.a", "dvs", "osv", "ca", "nr", "s.k",
	},
}
