package mysql

import (
	"context"

	"gorm.io/gorm"
)

// TxManager 事务管理器
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 支持嵌套事务(GORM自动使用Savepoint)
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn内的所有Repository操作都会在同一事务中执行,
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    a, err := authorRepo.FindByID(ctx, id)
//	    if err != nil {
//	        return err
//	    }
//	    if a.HasBooks() {
//	        return author.HasBooks() // 自动回滚
//	    }
//	    return authorRepo.Delete(ctx, id)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbFromContext(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入到Context中,Repository通过dbFromContext提取
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
