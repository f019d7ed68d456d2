package config

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lia-dsgnr/calo-tracker/models"
)

const DefaultUserName = "Default User"

func food(id, nameVi, nameEn string, cat models.FoodCategory, serving string, confidence float64,
	s, m, l models.PortionNutrition) models.SystemFood {
	return models.SystemFood{
		ID: id, NameVi: nameVi, NameEn: nameEn, Category: cat,
		Serving: serving, Confidence: confidence,
		KcalS: s.Kcal, ProteinS: s.Protein, FatS: s.Fat, CarbsS: s.Carbs,
		KcalM: m.Kcal, ProteinM: m.Protein, FatM: m.Fat, CarbsM: m.Carbs,
		KcalL: l.Kcal, ProteinL: l.Protein, FatL: l.Fat, CarbsL: l.Carbs,
	}
}

func n(kcal, protein, fat, carbs float64) models.PortionNutrition {
	return models.PortionNutrition{Kcal: kcal, Protein: protein, Fat: fat, Carbs: carbs}
}

// systemFoods is the seed catalog: common Vietnamese dishes with
// S/M/L nutrition snapshots.
var systemFoods = []models.SystemFood{
	food("pho-bo-tai", "Phở bò tái", "Rare beef pho", models.CategoryNoodles, "1 bowl (450g)", 0.9,
		n(320, 21, 9, 40), n(420, 28, 12, 52), n(540, 36, 16, 66)),
	food("pho-ga", "Phở gà", "Chicken pho", models.CategoryNoodles, "1 bowl (430g)", 0.9,
		n(290, 19, 7, 39), n(380, 25, 10, 50), n(490, 32, 13, 64)),
	food("bun-bo-hue", "Bún bò Huế", "Hue spicy beef noodle soup", models.CategoryNoodles, "1 bowl (480g)", 0.85,
		n(370, 22, 13, 43), n(480, 29, 18, 55), n(620, 37, 24, 70)),
	food("bun-thit-nuong", "Bún thịt nướng", "Grilled pork vermicelli", models.CategoryNoodles, "1 bowl (400g)", 0.85,
		n(330, 18, 11, 42), n(430, 24, 15, 54), n(550, 31, 20, 68)),
	food("hu-tieu", "Hủ tiếu Nam Vang", "Phnom Penh noodle soup", models.CategoryNoodles, "1 bowl (450g)", 0.8,
		n(310, 18, 8, 43), n(410, 24, 11, 56), n(520, 31, 15, 70)),
	food("mi-quang", "Mì Quảng", "Quang-style turmeric noodles", models.CategoryNoodles, "1 bowl (380g)", 0.8,
		n(340, 17, 12, 42), n(440, 23, 16, 54), n(560, 29, 21, 68)),
	food("com-tam", "Cơm tấm sườn", "Broken rice with grilled pork chop", models.CategoryRice, "1 plate (420g)", 0.9,
		n(420, 20, 14, 56), n(550, 26, 19, 72), n(700, 34, 25, 90)),
	food("com-ga", "Cơm gà", "Vietnamese chicken rice", models.CategoryRice, "1 plate (400g)", 0.85,
		n(390, 22, 11, 54), n(510, 29, 15, 70), n(650, 37, 20, 88)),
	food("com-chien-duong-chau", "Cơm chiên Dương Châu", "Yangzhou fried rice", models.CategoryRice, "1 plate (350g)", 0.8,
		n(400, 13, 14, 57), n(520, 17, 19, 73), n(660, 22, 25, 92)),
	food("xoi-man", "Xôi mặn", "Savory sticky rice", models.CategoryRice, "1 portion (250g)", 0.75,
		n(330, 11, 10, 50), n(430, 14, 13, 65), n(550, 18, 17, 82)),
	food("banh-mi-thit", "Bánh mì thịt", "Pork banh mi", models.CategoryBanhMi, "1 loaf (220g)", 0.9,
		n(270, 11, 9, 35), n(350, 15, 12, 45), n(450, 19, 16, 57)),
	food("banh-mi-trung", "Bánh mì trứng", "Egg banh mi", models.CategoryBanhMi, "1 loaf (200g)", 0.85,
		n(250, 10, 9, 32), n(330, 13, 12, 42), n(420, 17, 16, 53)),
	food("banh-mi-cha-ca", "Bánh mì chả cá", "Fish cake banh mi", models.CategoryBanhMi, "1 loaf (210g)", 0.8,
		n(260, 12, 8, 34), n(340, 16, 10, 44), n(430, 20, 13, 56)),
	food("goi-cuon", "Gỏi cuốn", "Fresh spring rolls", models.CategorySnacks, "2 rolls (160g)", 0.85,
		n(110, 7, 2, 16), n(150, 9, 3, 22), n(220, 13, 4, 32)),
	food("cha-gio", "Chả giò", "Fried spring rolls", models.CategorySnacks, "3 rolls (120g)", 0.8,
		n(180, 6, 11, 14), n(240, 8, 15, 18), n(320, 11, 20, 24)),
	food("banh-xeo", "Bánh xèo", "Sizzling pancake", models.CategorySnacks, "1 piece (200g)", 0.75,
		n(290, 9, 16, 28), n(380, 12, 21, 36), n(490, 15, 27, 46)),
	food("ca-phe-sua-da", "Cà phê sữa đá", "Iced milk coffee", models.CategoryDrinks, "1 glass (240ml)", 0.9,
		n(90, 1.5, 3, 14), n(120, 2, 5, 15), n(160, 2.5, 6, 24)),
	food("tra-sua-tran-chau", "Trà sữa trân châu", "Bubble milk tea", models.CategoryDrinks, "1 cup (500ml)", 0.8,
		n(250, 3, 6, 46), n(340, 4, 9, 60), n(440, 5, 12, 77)),
	food("nuoc-mia", "Nước mía", "Sugarcane juice", models.CategoryDrinks, "1 glass (300ml)", 0.85,
		n(110, 0, 0, 28), n(150, 0, 0, 38), n(200, 0, 0, 50)),
	food("che-ba-mau", "Chè ba màu", "Three-color dessert", models.CategoryDesserts, "1 glass (300g)", 0.75,
		n(180, 3, 5, 31), n(240, 4, 7, 41), n(310, 5, 9, 53)),
	food("banh-flan", "Bánh flan", "Creme caramel", models.CategoryDesserts, "1 piece (100g)", 0.85,
		n(110, 3, 4, 16), n(150, 4, 5, 22), n(200, 6, 7, 29)),
	food("salad-ga-nuong", "Salad gà nướng", "Grilled chicken salad", models.CategoryCleanEating, "1 bowl (300g)", 0.85,
		n(220, 24, 9, 11), n(290, 32, 12, 14), n(370, 41, 15, 18)),
	food("uc-ga-luoc", "Ức gà luộc", "Boiled chicken breast", models.CategoryCleanEating, "1 portion (150g)", 0.9,
		n(120, 26, 2, 0), n(165, 35, 3.5, 0), n(220, 46, 4.5, 0)),
	food("khoai-lang-luoc", "Khoai lang luộc", "Boiled sweet potato", models.CategoryCleanEating, "1 piece (180g)", 0.9,
		n(115, 1.5, 0, 27), n(155, 2, 0, 36), n(200, 2.5, 0, 47)),
}

// SeedSystemFoods loads the catalog on first run. Idempotent: an
// already-populated table is left untouched.
func SeedSystemFoods(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SystemFood{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&systemFoods).Error
}

// EnsureDefaultUser returns the first profile, creating one with
// default goals when the database is new.
func EnsureDefaultUser(db *gorm.DB) (*models.User, error) {
	var user models.User
	err := db.Order("created_at ASC").First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		ID:               uuid.NewString(),
		Name:             DefaultUserName,
		DailyKcalGoal:    models.DefaultKcalGoal,
		DailyProteinGoal: models.DefaultProteinGoal,
		DailyCarbsGoal:   models.DefaultCarbsGoal,
		DailyFatGoal:     models.DefaultFatGoal,
		CreatedAt:        time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
