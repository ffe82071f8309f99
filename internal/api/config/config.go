package config

import (
	"DevSpace/internal/pkg/consts"
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("kafka_like_consumer.group_id", consts.GroupArticleLike)
	viper.SetDefault("kafka_collect_consumer.group_id", consts.GroupArticleCollect)
	viper.SetDefault("kafka_comment_consumer.group_id", consts.GroupArticleComment)

	viper.SetDefault("scheduler.view_sync_spec", "@every 5m")
	viper.SetDefault("scheduler.view_full_sync_spec", "0 0 2 * * *")
	viper.SetDefault("scheduler.stats_sync_spec", "0 0 1 * * *")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
