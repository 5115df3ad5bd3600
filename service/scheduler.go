package service

import (
	"log"
	"time"

	"garage/store"
)

// StartScheduler 启动后台定时任务
// 同步任务本身幂等（同一自然月最多推进一次），
// 每天凌晨触发一次即可，错过的月份下次启动时也会补上。
func StartScheduler(s *store.Store) {
	go func() {
		log.Println("定时任务已启动...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// 每天 00:05 触发
			if now.Hour() == 0 && now.Minute() == 5 {
				log.Println("触发分期同步任务 [00:05]...")
				if err := s.SynchronizePendingPayments(now); err != nil {
					log.Printf("分期同步失败: %v", err)
				}
			}
		}
	}()
}
