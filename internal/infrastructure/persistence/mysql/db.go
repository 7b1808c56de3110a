package mysql

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 按配置自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: time.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 连接池
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info().
		Str("host", cfg.Database.Host).
		Str("db", cfg.Database.DBName).
		Msg("数据库连接成功")

	if cfg.Database.AutoMigrate {
		if err := autoMigrate(db); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意：
// 1. AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
// 2. authors必须先于books迁移（books.author_id外键引用authors.id）
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&BookModel{},
	)
}

// AuthorModel GORM作者模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/author/entity.go是领域实体，不依赖GORM
// 3. NameKey = lower(trim(first)) + \x1f + lower(trim(last))，唯一索引保证并发创建不重名
// 4. 物理删除（没有DeletedAt），books外键RESTRICT阻止删除仍有图书的作者
type AuthorModel struct {
	ID        string    `gorm:"primaryKey;size:36;comment:作者ID(UUID)"`
	FirstName string    `gorm:"size:50;not null;comment:名"`
	LastName  string    `gorm:"size:50;not null;comment:姓"`
	NameKey   string    `gorm:"uniqueIndex;size:101;not null;comment:姓名唯一键(小写)"`
	Bio       *string   `gorm:"type:text;comment:简介"`
	BirthDate *Date     `gorm:"type:date;comment:出生日期"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel GORM图书模型
// 设计说明:
// 1. ISBN有唯一索引,防止并发创建重复ISBN
// 2. AuthorID外键引用authors.id,删除作者时RESTRICT
// 3. 物理删除,删除后ISBN可以重新使用
type BookModel struct {
	ID            string       `gorm:"primaryKey;size:36;comment:图书ID(UUID)"`
	Title         string       `gorm:"index;size:255;not null;comment:书名"`
	ISBN          string       `gorm:"column:isbn;uniqueIndex;size:17;not null;comment:ISBN号"`
	PublishedDate *Date        `gorm:"type:date;comment:出版日期"`
	Genre         *string      `gorm:"size:50;comment:类型"`
	AuthorID      string       `gorm:"index;size:36;not null;comment:作者ID"`
	Author        *AuthorModel `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt     time.Time    `gorm:"index;comment:创建时间"`
	UpdatedAt     time.Time    `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}
