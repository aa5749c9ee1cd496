package scans

// ID tipe untuk Scan
type ScanID string

// Result enum
type Result string

const (
	ResultFake    Result = "fake"
	ResultGenuine Result = "genuine"
)

// Category taxonomy untuk hasil classifier. User reports boleh bawa
// category bebas (scam type dari user), jadi underlying type tetap string.
type Category string

const (
	CategoryMoney    Category = "money"
	CategoryJob      Category = "job"
	CategoryShopping Category = "shopping"
	CategoryCrypto   Category = "crypto"
	CategoryKYC      Category = "kyc"
	CategoryLottery  Category = "lottery"
	CategoryGeneral  Category = "general"
)

// Source tags
const (
	SourceUserReport = "user_report"
)

// StoredTextLimit caps the text copy kept in the history so a single
// oversized submission cannot bloat every subsequent rewrite. Decisioning
// always runs on the full text; only the stored copy is capped.
const StoredTextLimit = 200

// Aggregate Root: Scan — one classification or user report, immutable once
// appended to the history.
type Scan struct {
	ID          ScanID   `json:"id,omitempty"`
	Text        string   `json:"text"`
	Result      Result   `json:"result"`
	Category    Category `json:"category"`
	Probability float64  `json:"probability"`
	Timestamp   int64    `json:"timestamp"`
	Source      string   `json:"source,omitempty"`
	AdLink      string   `json:"ad_link,omitempty"`
}

// CapText truncates s to StoredTextLimit runes for storage.
func CapText(s string) string {
	r := []rune(s)
	if len(r) <= StoredTextLimit {
		return s
	}
	return string(r[:StoredTextLimit])
}
