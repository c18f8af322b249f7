package model

// Book 정경 66권 중 한 권과 그 장 수
// swagger:model Book
type Book struct {
	Name       string `json:"name"`
	KoreanName string `json:"koreanName"`
	Chapters   int    `json:"chapters"`
}

// TotalCanonChapters 정경 전체 장 수
const TotalCanonChapters = 1189

// Canon 정경 66권, 고정 순서. 장 수와 한글 이름은 표시/검증 양쪽에서 쓰인다.
var Canon = []Book{
	{"Genesis", "창세기", 50},
	{"Exodus", "출애굽기", 40},
	{"Leviticus", "레위기", 27},
	{"Numbers", "민수기", 36},
	{"Deuteronomy", "신명기", 34},
	{"Joshua", "여호수아", 24},
	{"Judges", "사사기", 21},
	{"Ruth", "룻기", 4},
	{"1 Samuel", "사무엘상", 31},
	{"2 Samuel", "사무엘하", 24},
	{"1 Kings", "열왕기상", 22},
	{"2 Kings", "열왕기하", 25},
	{"1 Chronicles", "역대상", 29},
	{"2 Chronicles", "역대하", 36},
	{"Ezra", "에스라", 10},
	{"Nehemiah", "느헤미야", 13},
	{"Esther", "에스더", 10},
	{"Job", "욥기", 42},
	{"Psalms", "시편", 150},
	{"Proverbs", "잠언", 31},
	{"Ecclesiastes", "전도서", 12},
	{"Song of Solomon", "아가", 8},
	{"Isaiah", "이사야", 66},
	{"Jeremiah", "예레미야", 52},
	{"Lamentations", "예레미야애가", 5},
	{"Ezekiel", "에스겔", 48},
	{"Daniel", "다니엘", 12},
	{"Hosea", "호세아", 14},
	{"Joel", "요엘", 3},
	{"Amos", "아모스", 9},
	{"Obadiah", "오바댜", 1},
	{"Jonah", "요나", 4},
	{"Micah", "미가", 7},
	{"Nahum", "나훔", 3},
	{"Habakkuk", "하박국", 3},
	{"Zephaniah", "스바냐", 3},
	{"Haggai", "학개", 2},
	{"Zechariah", "스가랴", 14},
	{"Malachi", "말라기", 4},
	{"Matthew", "마태복음", 28},
	{"Mark", "마가복음", 16},
	{"Luke", "누가복음", 24},
	{"John", "요한복음", 21},
	{"Acts", "사도행전", 28},
	{"Romans", "로마서", 16},
	{"1 Corinthians", "고린도전서", 16},
	{"2 Corinthians", "고린도후서", 13},
	{"Galatians", "갈라디아서", 6},
	{"Ephesians", "에베소서", 6},
	{"Philippians", "빌립보서", 4},
	{"Colossians", "골로새서", 4},
	{"1 Thessalonians", "데살로니가전서", 5},
	{"2 Thessalonians", "데살로니가후서", 3},
	{"1 Timothy", "디모데전서", 6},
	{"2 Timothy", "디모데후서", 4},
	{"Titus", "디도서", 3},
	{"Philemon", "빌레몬서", 1},
	{"Hebrews", "히브리서", 13},
	{"James", "야고보서", 5},
	{"1 Peter", "베드로전서", 5},
	{"2 Peter", "베드로후서", 3},
	{"1 John", "요한일서", 5},
	{"2 John", "요한이서", 1},
	{"3 John", "요한삼서", 1},
	{"Jude", "유다서", 1},
	{"Revelation", "요한계시록", 22},
}

var canonIndex = buildCanonIndex()

func buildCanonIndex() map[string]Book {
	idx := make(map[string]Book, len(Canon))
	for _, b := range Canon {
		idx[b.Name] = b
	}
	return idx
}

// ChapterCount 책 이름으로 장 수를 조회. 정경에 없는 이름이면 ok=false
func ChapterCount(book string) (int, bool) {
	b, ok := canonIndex[book]
	if !ok {
		return 0, false
	}
	return b.Chapters, true
}

// KoreanBookName 영문 책 이름의 한글 표기. 모르는 이름은 그대로 돌려준다
func KoreanBookName(book string) string {
	if b, ok := canonIndex[book]; ok {
		return b.KoreanName
	}
	return book
}
