package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trip-server/models"
)

func ageScored(prefecture, name string, ageScores map[string]float64, nps float64) models.Facility {
	return models.Facility{
		Prefecture: prefecture,
		Name:       name,
		Scores: map[string]map[string]float64{
			models.CategoryAge: ageScores,
		},
		NPS: nps,
	}
}

func TestEngine_Recommend_EmptyCatalog(t *testing.T) {
	engine := NewEngine(nil, true)
	result := engine.Recommend(models.UserProfile{Age: "20代"}, 10)
	if len(result) != 0 {
		t.Errorf("Expected empty result for empty catalog, got %d", len(result))
	}
}

func TestEngine_Recommend_ScoreOrderBeforeNPSResort(t *testing.T) {
	facilities := []models.Facility{
		ageScored("石川県", "A", map[string]float64{"20代": 5}, 10),
		ageScored("富山県", "B", map[string]float64{"20代": 3}, 50),
		ageScored("福井県", "C", map[string]float64{"20代": 2}, 90),
	}

	// NPS re-sort disabled: pure attribute-score order.
	engine := NewEngine(facilities, false)
	result := engine.Recommend(models.UserProfile{Age: "20代"}, 3)
	names := []string{result[0].Name, result[1].Name, result[2].Name}
	assert.Equal(t, []string{"A", "B", "C"}, names)

	// NPS re-sort enabled: final order is NPS descending.
	engine = NewEngine(facilities, true)
	result = engine.Recommend(models.UserProfile{Age: "20代"}, 3)
	names = []string{result[0].Name, result[1].Name, result[2].Name}
	assert.Equal(t, []string{"C", "B", "A"}, names)
}

func TestEngine_Recommend_StableTieBreak(t *testing.T) {
	// Identical scores: catalog order must be preserved.
	facilities := []models.Facility{
		ageScored("石川県", "first", map[string]float64{"20代": 4}, 0),
		ageScored("富山県", "second", map[string]float64{"20代": 4}, 0),
		ageScored("福井県", "third", map[string]float64{"20代": 4}, 0),
	}
	engine := NewEngine(facilities, true)
	result := engine.Recommend(models.UserProfile{Age: "20代"}, 3)

	names := []string{result[0].Name, result[1].Name, result[2].Name}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}

func TestEngine_Recommend_Idempotent(t *testing.T) {
	facilities := []models.Facility{
		ageScored("石川県", "A", map[string]float64{"20代": 5, "30代": 1}, 40),
		ageScored("富山県", "B", map[string]float64{"20代": 3}, 70),
	}
	engine := NewEngine(facilities, true)
	profile := models.UserProfile{Age: "20代"}

	first := engine.Recommend(profile, 2)
	second := engine.Recommend(profile, 2)
	assert.Equal(t, first, second)
}

func TestEngine_Recommend_CoarseCategoryExpansion(t *testing.T) {
	// 若年層 expands to 10代+20代, so both columns are summed.
	f := ageScored("石川県", "A", map[string]float64{"10代": 2, "20代": 3, "30代": 9}, 0)
	engine := NewEngine([]models.Facility{f}, false)

	result := engine.Recommend(models.UserProfile{Age: "若年層"}, 1)
	if result[0].TotalScore != 5 {
		t.Errorf("Expected coarse category sum 5, got %v", result[0].TotalScore)
	}
}

func TestEngine_Recommend_UnknownAttributesScoreZero(t *testing.T) {
	f := ageScored("石川県", "A", map[string]float64{"20代": 3}, 0)
	engine := NewEngine([]models.Facility{f}, false)

	result := engine.Recommend(models.UserProfile{Age: "20代", Purpose: "存在しない目的"}, 1)
	if result[0].TotalScore != 3 {
		t.Errorf("Expected unknown attributes to contribute 0, got %v", result[0].TotalScore)
	}
}

func TestEngine_Recommend_NonNegativeScores(t *testing.T) {
	facilities := []models.Facility{
		ageScored("石川県", "A", map[string]float64{"20代": 0}, 0),
		ageScored("富山県", "B", map[string]float64{"20代": 7}, 0),
	}
	engine := NewEngine(facilities, true)
	for _, sf := range engine.Recommend(models.UserProfile{Age: "20代", Gender: "女性"}, 10) {
		if sf.TotalScore < 0 {
			t.Errorf("Facility %s has negative score %v", sf.Name, sf.TotalScore)
		}
	}
}

func TestEngine_Recommend_RegionFilter(t *testing.T) {
	facilities := []models.Facility{
		ageScored("石川県", "A", map[string]float64{"20代": 1}, 0),
		ageScored("東京都", "B", map[string]float64{"20代": 9}, 0),
	}
	engine := NewEngine(facilities, false)

	result := engine.Recommend(models.UserProfile{Age: "20代", Region: "北陸"}, 10)
	if len(result) != 1 || result[0].Name != "A" {
		t.Fatalf("Expected only the Hokuriku facility, got %v", result)
	}
}

func TestEngine_Recommend_LimitApplied(t *testing.T) {
	facilities := []models.Facility{
		ageScored("石川県", "A", map[string]float64{"20代": 3}, 0),
		ageScored("富山県", "B", map[string]float64{"20代": 2}, 0),
		ageScored("福井県", "C", map[string]float64{"20代": 1}, 0),
	}
	engine := NewEngine(facilities, false)
	result := engine.Recommend(models.UserProfile{Age: "20代"}, 2)
	if len(result) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(result))
	}
}
