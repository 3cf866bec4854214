package main

import (
	"flag"

	be "upstagram/be"
	"upstagram/be/biz/config"
	"upstagram/be/biz/db"
	"upstagram/be/biz/util/logger"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "path to the deploy config")
	addr := flag.String("addr", ":8888", "listen address")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	h := be.NewEngine(server.WithHostPorts(*addr))
	h.Spin()
}
