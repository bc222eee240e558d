package config

import (
	"strconv"
	"time"

	"dbgatewayapi/pkg/logger"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the global GORM handle on the profile store.
var DB *gorm.DB

// ProfileStoreDSN builds the DSN of the profile store from Cfg.
func ProfileStoreDSN() string {
	dsn := driver.NewConfig()
	dsn.User = Cfg.DBUser
	dsn.Passwd = Cfg.DBPass
	dsn.Net = "tcp"
	dsn.Addr = Cfg.DBHost + ":" + strconv.Itoa(Cfg.DBPort)
	dsn.DBName = Cfg.DBName
	dsn.ParseTime = true
	dsn.Loc = time.Local
	dsn.Timeout = Cfg.ConnectTimeout
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn.FormatDSN()
}

// ConnectDB opens the profile store using GORM.
func ConnectDB() error {
	logger.Infof("Connecting to profile store %s@%s:%d/%s", Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)

	db, err := gorm.Open(mysql.Open(ProfileStoreDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	logger.Infof("GORM connected successfully to profile store %s", Cfg.DBName)

	DB = db
	return nil
}
