package infra_sentiment_cache

import (
	"encoding/json"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/screenlens/core/internal/model"
)

// Driver keeps classifier verdicts keyed by exact genre string.
// Entries are written without TTL: the input domain is static for
// the session, so they are never invalidated.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Get(genre string) (model.SentimentResult, bool, error) {
	fullKey := d.getFullKey(genre)

	val, err := d.client.Get(fullKey).Result()
	if err != nil {
		if err == redis.Nil {
			return model.SentimentResult{}, false, nil
		}
		return model.SentimentResult{}, false, err
	}

	var res model.SentimentResult
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return model.SentimentResult{}, false, err
	}

	return res, true, nil
}

func (d *Driver) Set(genre string, res model.SentimentResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}

	return d.client.Set(d.getFullKey(genre), string(payload), 0).Err()
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
