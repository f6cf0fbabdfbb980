// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package language

var spanish = table{
	code:               "es",
	name:               "Spanish",
	sentenceBeginnings: true,
	firstWords: []string{
		// Articles:
		"el", "la", "lo", "los", "las", "un", "una", "unos", "unas",
		// Numbers 1-10:
		"uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve", "diez",
		// Demonstratives:
		"este", "esta", "estos", "estas", "ese", "esa", "esos", "esas",
		"aquel", "aquella", "aquellos", "aquellas", "esto", "eso", "aquello",
	},
	functionWords: []string{
		"el", "la", "los", "las", "un", "una", "unos", "unas", "y", "e", "o", "u", "pero",
		"de", "del", "en", "a", "al", "con", "por", "para", "sin", "sobre", "entre", "hasta",
		"es", "son", "fue", "era", "está", "están", "ha", "han", "ser", "estar",
		"que", "se", "no", "lo", "le", "les", "como", "más", "muy", "su", "sus",
	},
	abbreviations: []string{
		"sr", "sra", "srta", "dr", "dra", "p.ej", "ud", "uds", "núm", "pág",
	},
}

var french = table{
	code:               "fr",
	name:               "French",
	sentenceBeginnings: true,
	firstWords: []string{
		// Articles:
		"le", "la", "les", "un", "une", "des", "du",
		// Numbers 1-10:
		"deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf", "dix",
		// Demonstratives:
		"ce", "cet", "cette", "ces", "celui", "celle", "ceux", "celles", "ceci", "cela",
	},
	functionWords: []string{
		"le", "la", "les", "un", "une", "des", "du", "de", "et", "ou", "mais", "donc",
		"dans", "en", "à", "au", "aux", "avec", "par", "pour", "sur", "sans", "sous", "chez",
		"est", "sont", "était", "été", "a", "ont", "être", "avoir",
		"que", "qui", "ne", "pas", "se", "ce", "il", "elle", "nous", "vous", "ils", "elles",
		"son", "sa", "ses", "leur", "leurs", "plus", "très",
	},
	abbreviations: []string{
		"m", "mme", "mlle", "dr", "p.ex", "cf", "env", "av", "apr",
	},
}

var italian = table{
	code:               "it",
	name:               "Italian",
	sentenceBeginnings: true,
	firstWords: []string{
		// Articles:
		"il", "lo", "la", "i", "gli", "le", "un", "uno", "una",
		// Numbers 1-10:
		"due", "tre", "quattro", "cinque", "sei", "sette", "otto", "nove", "dieci",
		// Demonstratives:
		"questo", "questa", "questi", "queste", "quello", "quella", "quelli", "quelle",
	},
	functionWords: []string{
		"il", "lo", "la", "i", "gli", "le", "un", "uno", "una", "e", "o", "ma",
		"di", "del", "della", "dei", "delle", "in", "nel", "nella", "a", "al", "alla",
		"con", "per", "su", "da", "tra", "fra",
		"è", "sono", "era", "essere", "ha", "hanno", "avere",
		"che", "non", "si", "come", "più", "molto", "suo", "sua",
	},
	abbreviations: []string{
		"sig", "sig.ra", "dott", "ecc", "es", "pag", "prof",
	},
}

var portuguese = table{
	code:               "pt",
	name:               "Portuguese",
	sentenceBeginnings: true,
	firstWords: []string{
		// Articles:
		"o", "a", "os", "as", "um", "uma", "uns", "umas",
		// Numbers 1-10:
		"dois", "duas", "três", "quatro", "cinco", "seis", "sete", "oito", "nove", "dez",
		// Demonstratives:
		"este", "esta", "estes", "estas", "esse", "essa", "esses", "essas",
		"aquele", "aquela", "aqueles", "aquelas", "isto", "isso", "aquilo",
	},
	functionWords: []string{
		"o", "a", "os", "as", "um", "uma", "e", "ou", "mas",
		"de", "do", "da", "dos", "das", "em", "no", "na", "nos", "nas",
		"com", "por", "para", "sem", "sobre", "entre",
		"é", "são", "foi", "era", "está", "estão", "ser", "estar", "ter",
		"que", "não", "se", "como", "mais", "muito", "seu", "sua",
	},
	abbreviations: []string{
		"sr", "sra", "dr", "dra", "p.ex", "pág", "núm",
	},
}
