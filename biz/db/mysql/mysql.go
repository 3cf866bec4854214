package mysql

import (
	"fmt"

	"upstagram/be/biz/config"
	"upstagram/be/biz/model/storage"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var dbConn *gorm.DB

func Init() {
	conf := config.GetMySQLConf()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&storage.MemberRecord{},
		&storage.StoryRecord{},
		&storage.StoryReactionRecord{},
		&storage.StoryWatchingRecord{},
	); err != nil {
		panic(err)
	}

	dbConn = db
}

func GetDbConn() *gorm.DB {
	return dbConn
}

// SetDbConn replaces the connection, used by tests to swap in sqlite.
func SetDbConn(db *gorm.DB) {
	dbConn = db
}
