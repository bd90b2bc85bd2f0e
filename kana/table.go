package kana

// Character is one kana glyph pair with its romaji transliteration.
type Character struct {
	Hiragana string
	Katakana string
	Romaji   string
}

// Row groups the characters of one traditional syllabary row.
type Row struct {
	Name       string
	Alias      string
	Characters []Character
}

var table = []Row{
	{Name: "あ行", Alias: "a", Characters: []Character{
		{"あ", "ア", "a"}, {"い", "イ", "i"}, {"う", "ウ", "u"}, {"え", "エ", "e"}, {"お", "オ", "o"},
	}},
	{Name: "か行", Alias: "ka", Characters: []Character{
		{"か", "カ", "ka"}, {"き", "キ", "ki"}, {"く", "ク", "ku"}, {"け", "ケ", "ke"}, {"こ", "コ", "ko"},
	}},
	{Name: "さ行", Alias: "sa", Characters: []Character{
		{"さ", "サ", "sa"}, {"し", "シ", "shi"}, {"す", "ス", "su"}, {"せ", "セ", "se"}, {"そ", "ソ", "so"},
	}},
	{Name: "た行", Alias: "ta", Characters: []Character{
		{"た", "タ", "ta"}, {"ち", "チ", "chi"}, {"つ", "ツ", "tsu"}, {"て", "テ", "te"}, {"と", "ト", "to"},
	}},
	{Name: "な行", Alias: "na", Characters: []Character{
		{"な", "ナ", "na"}, {"に", "ニ", "ni"}, {"ぬ", "ヌ", "nu"}, {"ね", "ネ", "ne"}, {"の", "ノ", "no"},
	}},
	{Name: "は行", Alias: "ha", Characters: []Character{
		{"は", "ハ", "ha"}, {"ひ", "ヒ", "hi"}, {"ふ", "フ", "fu"}, {"へ", "ヘ", "he"}, {"ほ", "ホ", "ho"},
	}},
	{Name: "ま行", Alias: "ma", Characters: []Character{
		{"ま", "マ", "ma"}, {"み", "ミ", "mi"}, {"む", "ム", "mu"}, {"め", "メ", "me"}, {"も", "モ", "mo"},
	}},
	{Name: "や行", Alias: "ya", Characters: []Character{
		{"や", "ヤ", "ya"}, {"ゆ", "ユ", "yu"}, {"よ", "ヨ", "yo"},
	}},
	{Name: "ら行", Alias: "ra", Characters: []Character{
		{"ら", "ラ", "ra"}, {"り", "リ", "ri"}, {"る", "ル", "ru"}, {"れ", "レ", "re"}, {"ろ", "ロ", "ro"},
	}},
	{Name: "わ行", Alias: "wa", Characters: []Character{
		{"わ", "ワ", "wa"}, {"を", "ヲ", "wo"}, {"ん", "ン", "n"},
	}},
}
