package catalog

import (
	"strings"
	"testing"

	"trip-server/models"
)

const sampleCSV = `都道府県,施設名,10代,20代,30代,男性,女性,1泊,温泉や露天風呂,NPS
石川県,兼六園,1,5,3,2,4,1,0,72
富山県,黒部ダム,2,3,4,3,3,2,1,65
福井県,永平寺,0,2,5,1,2,1,3,80
`

func TestParser_Parse_Success(t *testing.T) {
	parser := NewParser()
	facilities, err := parser.Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(facilities) != 3 {
		t.Fatalf("Expected 3 facilities, got %d", len(facilities))
	}

	kenrokuen := facilities[0]
	if kenrokuen.Prefecture != "石川県" || kenrokuen.Name != "兼六園" {
		t.Errorf("Unexpected identity: %s", kenrokuen.Key())
	}
	if got := kenrokuen.Score(models.CategoryAge, "20代"); got != 5 {
		t.Errorf("Expected 20代 score 5, got %v", got)
	}
	if got := kenrokuen.Score(models.CategoryGender, "女性"); got != 4 {
		t.Errorf("Expected 女性 score 4, got %v", got)
	}
	if kenrokuen.NPS != 72 {
		t.Errorf("Expected NPS 72, got %v", kenrokuen.NPS)
	}
}

func TestParser_Parse_SkipsMalformedRows(t *testing.T) {
	csv := "都道府県,施設名,20代\n石川県,兼六園,5\n富山県\n,,3\n福井県,永平寺,2\n"
	parser := NewParser()
	facilities, err := parser.Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(facilities) != 2 {
		t.Fatalf("Expected malformed rows to be skipped, got %d facilities", len(facilities))
	}
}

func TestParser_Parse_NonNumericScoresBecomeZero(t *testing.T) {
	csv := "都道府県,施設名,20代,NPS\n石川県,兼六園,abc,n/a\n"
	parser := NewParser()
	facilities, err := parser.Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := facilities[0].Score(models.CategoryAge, "20代"); got != 0 {
		t.Errorf("Expected non-numeric cell to parse as 0, got %v", got)
	}
	if facilities[0].NPS != 0 {
		t.Errorf("Expected non-numeric NPS to parse as 0, got %v", facilities[0].NPS)
	}
}

func TestParser_Parse_DuplicateIdentityKeepsFirst(t *testing.T) {
	csv := "都道府県,施設名,20代\n石川県,兼六園,5\n石川県,兼六園,1\n"
	parser := NewParser()
	facilities, err := parser.Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(facilities) != 1 {
		t.Fatalf("Expected duplicate identity to be dropped, got %d rows", len(facilities))
	}
	if got := facilities[0].Score(models.CategoryAge, "20代"); got != 5 {
		t.Errorf("Expected first occurrence to win, got score %v", got)
	}
}

func TestParser_Parse_EmptyInput(t *testing.T) {
	parser := NewParser()
	facilities, err := parser.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Expected no error for empty input, got %v", err)
	}
	if len(facilities) != 0 {
		t.Errorf("Expected no facilities, got %d", len(facilities))
	}
}
