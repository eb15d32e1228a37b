package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中事务DB的键
type txKey struct{}

// TxManager 事务管理器
// 设计要点:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. fn返回error时自动ROLLBACK,返回nil时自动COMMIT
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn函数内通过同一个ctx调用的所有Repository操作都在同一事务中执行。
// 结算引擎用法:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    lines, err := cartRepo.LockByUserID(ctx, userID) // 行锁
//	    ...
//	    if err := orderRepo.Create(ctx, newOrder); err != nil {
//	        return err // 自动回滚,订单和明细都不会落库
//	    }
//	    return cartRepo.DeleteByIDs(ctx, lineIDs) // nil则提交
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入到Context中,Repository的getDB方法从中提取
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// dbFromContext 从context提取事务DB,没有事务时返回fallback
// 所有Repository共用,保证"是否在事务中"对仓储调用方透明
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
