package config

// Config 配置主体
type Config struct {
	Server               ServerConfig         `mapstructure:"server"`
	DB                   DBConfig             `mapstructure:"database"`
	Redis                RedisConfig          `mapstructure:"redis"`
	Kafka                KafkaConfig          `mapstructure:"kafka"`
	KafkaLikeConsumer    KafkaLikeConsumer    `mapstructure:"kafka_like_consumer"`
	KafkaCollectConsumer KafkaCollectConsumer `mapstructure:"kafka_collect_consumer"`
	KafkaCommentConsumer KafkaCommentConsumer `mapstructure:"kafka_comment_consumer"`
	Scheduler            SchedulerConfig      `mapstructure:"scheduler"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaLikeConsumer struct {
	GroupID string `mapstructure:"group_id"`
}

type KafkaCollectConsumer struct {
	GroupID string `mapstructure:"group_id"`
}

type KafkaCommentConsumer struct {
	GroupID string `mapstructure:"group_id"`
}

// SchedulerConfig 定时任务节奏，cron 表达式带秒位
type SchedulerConfig struct {
	// ViewSyncSpec 浏览量增量回写节奏
	ViewSyncSpec string `mapstructure:"view_sync_spec"`
	// ViewFullSyncSpec 浏览量每日全量回写节奏
	ViewFullSyncSpec string `mapstructure:"view_full_sync_spec"`
	// StatsSyncSpec 每日统计汇总节奏，按天跑一次
	StatsSyncSpec string `mapstructure:"stats_sync_spec"`
}
