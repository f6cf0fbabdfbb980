// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package language

var russian = table{
	code:               "ru",
	name:               "Russian",
	sentenceBeginnings: true,
	firstWords: []string{
		// Numbers 1-10:
		"один", "одна", "одно", "два", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять", "десять",
		// Demonstratives:
		"этот", "эта", "это", "эти", "тот", "та", "то", "те",
	},
	functionWords: []string{
		"и", "в", "во", "не", "на", "с", "со", "что", "как", "а", "но", "или",
		"по", "к", "ко", "у", "из", "за", "от", "для", "о", "об", "до", "при",
		"же", "ли", "бы", "это", "он", "она", "оно", "они", "мы", "вы", "я", "был", "была",
	},
	abbreviations: []string{
		"т.е", "т.д", "т.п", "г", "гг", "др", "им", "ул",
	},
}

var polish = table{
	code:               "pl",
	name:               "Polish",
	sentenceBeginnings: true,
	firstWords: []string{
		// Numbers 1-10:
		"jeden", "jedna", "jedno", "dwa", "dwie", "trzy", "cztery", "pięć", "sześć", "siedem", "osiem", "dziewięć", "dziesięć",
		// Demonstratives:
		"ten", "ta", "to", "ci", "te", "tamten", "tamta", "tamto", "tamci", "tamte",
	},
	functionWords: []string{
		"i", "w", "we", "na", "z", "ze", "do", "nie", "że", "się", "o", "od", "po",
		"przez", "dla", "jak", "a", "ale", "lub", "albo", "jest", "są", "był", "była", "to",
	},
	abbreviations: []string{
		"np", "tzn", "itd", "itp", "dr", "prof", "ok", "ul", "tj",
	},
}

var indonesian = table{
	code:               "id",
	name:               "Indonesian",
	sentenceBeginnings: true,
	firstWords: []string{
		// Numbers 1-10:
		"satu", "dua", "tiga", "empat", "lima", "enam", "tujuh", "delapan", "sembilan", "sepuluh",
		// Demonstratives and classifiers:
		"ini", "itu", "sebuah", "seorang", "seekor",
	},
	functionWords: []string{
		"dan", "atau", "tetapi", "di", "ke", "dari", "yang", "untuk", "dengan", "pada",
		"adalah", "ini", "itu", "tidak", "akan", "dalam", "juga", "oleh", "sudah",
	},
	abbreviations: []string{
		"dll", "dsb", "dr", "yth", "tsb",
	},
}

var arabic = table{
	code:               "ar",
	name:               "Arabic",
	sentenceBeginnings: true,
	firstWords: []string{
		// Numbers 1-10:
		"واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية", "تسعة", "عشرة",
		// Demonstratives:
		"هذا", "هذه", "ذلك", "تلك", "هؤلاء", "أولئك", "هذان", "هاتان",
	},
	functionWords: []string{
		"في", "من", "إلى", "على", "عن", "و", "أو", "ثم", "لكن", "أن", "إن", "هو", "هي", "هم", "كان", "قد", "لا",
	},
	extraTerminators: "؟",
}

var hebrew = table{
	code:               "he",
	name:               "Hebrew",
	sentenceBeginnings: true,
	firstWords: []string{
		// Numbers 1-10:
		"אחד", "אחת", "שניים", "שתיים", "שלוש", "ארבע", "חמש", "שש", "שבע", "שמונה", "תשע", "עשר",
		// Demonstratives:
		"זה", "זאת", "זו", "אלה", "אלו", "ההוא", "ההיא", "ההם", "ההן",
	},
	functionWords: []string{
		"של", "את", "על", "עם", "אל", "מן", "כי", "או", "גם", "לא", "הוא", "היא", "הם", "הן", "היה",
	},
}

var hungarian = table{
	code:               "hu",
	name:               "Hungarian",
	sentenceBeginnings: true,
	firstWords: []string{
		// Articles:
		"a", "az", "egy",
		// Numbers 1-10:
		"kettő", "két", "három", "négy", "öt", "hat", "hét", "nyolc", "kilenc", "tíz",
		// Demonstratives:
		"ez", "ezek", "azok", "ilyen", "olyan",
	},
	functionWords: []string{
		"a", "az", "egy", "és", "vagy", "de", "hogy", "nem", "is", "van", "volt", "meg", "csak", "mint", "már",
	},
	abbreviations: []string{
		"pl", "stb", "kb", "dr", "ill", "ún",
	},
}

var turkish = table{
	code:               "tr",
	name:               "Turkish",
	sentenceBeginnings: true,
	firstWords: []string{
		// Numbers 1-10:
		"bir", "iki", "üç", "dört", "beş", "altı", "yedi", "sekiz", "dokuz", "on",
		// Demonstratives:
		"bu", "şu", "o", "bunlar", "şunlar", "onlar",
	},
	functionWords: []string{
		"ve", "veya", "ama", "ile", "için", "de", "da", "bir", "bu", "şu", "o",
		"ne", "gibi", "daha", "çok", "en", "değil", "ki", "mi",
	},
	abbreviations: []string{
		"vb", "vs", "dr", "örn", "yy", "bkz",
	},
}

var greek = table{
	code:               "el",
	name:               "Greek",
	sentenceBeginnings: true,
	firstWords: []string{
		// Definite articles:
		"o", "του", "τον ", "ο", "των", "τους", "η", "της", "την", "τις", "το", "τα",
		// Indefinite articles:
		"ένας", "ενός", "έναν", "μία", "μίας", "μία", "ένα", "μια", "μιας", "μια",
		// Numbers 1-10:
		"ένα", "δύο", "τρία", "τέσσερα", "πέντε ", "έξι", "επτά", "εφτά", "οκτώ", "οχτώ", "εννέα", "εννιά", "δέκα",
		// Demonstratives:
		"αυτός", "αυτού", "αυτόν", "αυτοί", "αυτών", "αυτούς", "αυτή", "αυτής", "αυτό", "αυτά",
		"εκείνος", "εκείνου", "εκείνον", "εκείνοι", "εκείνων", "εκείνη", "εκείνης", "εκείνες", "εκείνο", "εκείνα",
		"τέτοιος", "τέτοιου", "τέτοιον", "τέτοιοι", "τέτοιων", "τέτοιους", "τέτοια", "τέτοιας", "τέτοιαν",
		"τέτοιες", "τέτοιο", "τόσος", "τόσου", "τόσον", "τόσοι", "τόσων", "τόσους", "τόση", "τόσης", "τόσες",
		"τόσο", "τόσα", "τούτος", "τούτου", "τούτον", "τούτοι", "τούτων", "τούτους", "τούτη ", "τούτης",
		"τούτην ", "τούτες", "τούτο", "τούτα", "εδώ", "εκεί",
	},
	// Words that can follow a demonstrative: definite articles and relative pronouns.
	secondWords: []string{
		"o", "του", "τον ", "ο", "των", "τους", "η", "της", "την", "τις", "το", "τα", "που", "τον", "οι",
	},
	functionWords: []string{
		"και", "ή", "αλλά", "σε", "στο", "στη", "στην", "στον", "με", "από", "για", "που",
		"ο", "η", "το", "οι", "τα", "δεν", "να", "θα", "είναι", "ήταν",
	},
	abbreviations: []string{
		"κ", "π.χ", "δηλ", "κλπ", "βλ",
	},
	extraTerminators: ";",
}

var japanese = table{
	code:          "ja",
	name:          "Japanese",
	functionWords: []string{"は", "が", "を", "に", "で", "と", "の", "も", "へ", "から", "まで", "より", "や", "か"},
	// Full-width terminators; Japanese separates sentences without spaces.
	extraTerminators: "。！？",
	spaceless:        true,
	tokenizer:        &kagomeTokenizer{},
}
