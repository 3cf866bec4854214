package db

import (
	"upstagram/be/biz/db/mysql"
	"upstagram/be/biz/db/redis"
)

func Init() {
	mysql.Init()
	redis.Init()
}
