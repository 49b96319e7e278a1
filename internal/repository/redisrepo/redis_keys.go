package redisrepo

import "fmt"

const (
	USER_FEED_KEY = "feed:%s" // <userID>
)

func UserFeedKey(userID string) string {
	return fmt.Sprintf(USER_FEED_KEY, userID)
}
