package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"trip-server/models"
)

// NPS_COLUMN is the header of the net-promoter score column.
const NPS_COLUMN = "NPS"

// attributeColumns maps each score category to the CSV column headers
// that belong to it. Columns absent from a file simply yield no score.
var attributeColumns = map[string][]string{
	models.CategoryAge: {
		"10代", "20代", "30代", "40代", "50代",
		"60代", "70代", "80代", "90代", "100代",
	},
	models.CategoryGender: {"男性", "女性"},
	models.CategoryStayDays: {
		"1泊", "2泊", "3泊", "4泊以上", "日帰り",
	},
	models.CategoryCompanion: {
		"自分ひとり", "恋人", "友人", "夫婦2人", "団体旅行", "親戚", "親",
		"職場の同僚", "小学生以下連れの家族", "中学生以下連れの家族",
		"高校生連れの家族",
	},
	models.CategoryPurpose: {
		"災害支援", "宿でのんびり過ごす", "温泉や露天風呂",
		"地元の美味しいものを食べる", "花見や紅葉などの自然鑑賞",
		"名所、旧跡の観光", "テーマパーク（遊園地、動物園、博物館など）",
		"買い物、アウトレット", "お祭りやイベントへの参加・見物",
		"スポーツ観戦や芸能鑑賞（コンサート等）",
		"アウトドア（海水浴、釣り、登山など）", "まちあるき、都市散策",
		"各種体験（手作り、果物狩りなど）", "スキー・スノボ、マリンスポーツ",
		"その他スポーツ（ゴルフ、テニスなど）", "ドライブ・ツーリング",
		"友人・親戚を尋ねる", "出張など仕事関係",
	},
}

// Parser turns a delimited score file into Facility rows. Column 0 is
// the prefecture, column 1 the facility name; the remaining columns are
// looked up by header against the attribute tables above.
type Parser struct {
	headers []string
}

// NewParser returns an empty Parser.
func NewParser() *Parser {
	return &Parser{}
}

// LoadFile reads and parses a catalog CSV from disk.
func (p *Parser) LoadFile(path string) ([]models.Facility, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse reads CSV rows from r. Malformed rows (fewer than two fields)
// are skipped, non-numeric score cells become 0 and duplicate
// (prefecture, name) identities keep the first occurrence.
func (p *Parser) Parse(r io.Reader) ([]models.Facility, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	p.headers = make([]string, len(records[0]))
	for i, h := range records[0] {
		p.headers[i] = strings.TrimSpace(h)
	}

	seen := make(map[string]bool)
	facilities := make([]models.Facility, 0, len(records)-1)
	skipped := 0
	for _, row := range records[1:] {
		facility, ok := p.buildFacility(row)
		if !ok {
			skipped++
			continue
		}
		if seen[facility.Key()] {
			log.Printf("[Catalog] duplicate facility %s, keeping first occurrence", facility.Key())
			continue
		}
		seen[facility.Key()] = true
		facilities = append(facilities, facility)
	}
	if skipped > 0 {
		log.Printf("[Catalog] skipped %d malformed rows", skipped)
	}
	return facilities, nil
}

func (p *Parser) buildFacility(values []string) (models.Facility, bool) {
	if len(values) < 2 || strings.TrimSpace(values[1]) == "" {
		return models.Facility{}, false
	}

	facility := models.Facility{
		Prefecture: strings.TrimSpace(values[0]),
		Name:       strings.TrimSpace(values[1]),
		Scores:     make(map[string]map[string]float64),
	}

	for category, attributes := range attributeColumns {
		facility.Scores[category] = make(map[string]float64)
		for _, attr := range attributes {
			if v, ok := p.cell(values, attr); ok {
				facility.Scores[category][attr] = parseScore(v)
			}
		}
	}
	if v, ok := p.cell(values, NPS_COLUMN); ok {
		facility.NPS = parseScore(v)
	}
	return facility, true
}

// cell returns the raw value under the named header, if present.
func (p *Parser) cell(values []string, header string) (string, bool) {
	for i, h := range p.headers {
		if h == header && i < len(values) {
			return values[i], true
		}
	}
	return "", false
}

// parseScore treats unparseable numeric cells as 0, never an error.
func parseScore(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
