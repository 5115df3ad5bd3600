package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"garage/config"
	"garage/database"
	"garage/router"
	"garage/service"
	"garage/store"
)

// @title 车辆与支出管理 API
// @version 1.0
// @description 本地桌面记账与车辆库存管理系统的核心 API，支持分期支出同步、付款凭证附件和车辆证件管理
// @host localhost:8710
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8710 或 :8710")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("车辆与支出管理系统 v1.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	cfg.PrintConfig()

	// 初始化数据库
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	// 存储对象在这里构造一次，显式注入到各组件
	st := store.New(db)
	attachments := service.NewAttachmentStore(db, cfg)

	// 每次启动推进一次分期支出（幂等，同一自然月最多推进一次）
	if err := st.SynchronizePendingPayments(time.Now()); err != nil {
		log.Printf("启动时分期同步失败: %v", err)
	}

	// 后台每日同步
	service.StartScheduler(st)

	r := router.SetupRouter(cfg, st, attachments)

	log.Printf("==========================================")
	log.Printf("  🚗 车辆与支出管理系统已启动")
	log.Printf("==========================================")
	log.Printf("  API接口:  http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
