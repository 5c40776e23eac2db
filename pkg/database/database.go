package database

import (
	"fmt"
	"log"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Department{},
		&model.Survey{},
		&model.Question{},
		&model.Response{},
		&model.Answer{},
		&model.CommentAction{},
	)
}

// Seed inserts the active survey instrument, its default question set and a
// bootstrap admin account when the corresponding tables are empty.
func Seed(db *gorm.DB) error {
	var surveyCount int64
	db.Model(&model.Survey{}).Count(&surveyCount)
	if surveyCount == 0 {
		survey := &model.Survey{
			Title:       "แบบประเมินความพึงพอใจการให้บริการ",
			Description: "แบบประเมินความพึงพอใจต่อการให้บริการของหน่วยงานภายในมหาวิทยาลัย",
		}
		if err := db.Create(survey).Error; err != nil {
			return err
		}

		defaultQuestions := []model.Question{
			{SurveyID: survey.ID, Text: "ความสุภาพและความเอาใจใส่ของเจ้าหน้าที่", Type: model.QuestionRating, Order: 1},
			{SurveyID: survey.ID, Text: "ความรวดเร็วในการให้บริการ", Type: model.QuestionRating, Order: 2},
			{SurveyID: survey.ID, Text: "ความถูกต้องครบถ้วนของการให้บริการ", Type: model.QuestionRating, Order: 3},
			{SurveyID: survey.ID, Text: "ความสะดวกของสถานที่และสิ่งอำนวยความสะดวก", Type: model.QuestionRating, Order: 4},
			{SurveyID: survey.ID, Text: "ความพึงพอใจโดยรวมต่อการให้บริการ", Type: model.QuestionRating, Order: 5},
			{SurveyID: survey.ID, Text: "ข้อเสนอแนะเพิ่มเติม", Type: model.QuestionText, Order: 6},
		}
		for _, q := range defaultQuestions {
			if err := db.Create(&q).Error; err != nil {
				return err
			}
		}
	}

	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			Username: "admin",
			Password: string(hashed),
			Role:     model.Admin,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
		log.Println("Seeded bootstrap admin account; change its password immediately")
	}

	return nil
}
