package main

import (
	"fmt"
	"log"
	"os"

	"github.com/portfolioapi/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 初始化数据库
	if err := db.Init(os.Getenv("DATABASE_PATH")); err != nil {
		log.Fatal("failed to initialize database:", err)
	}

	// 检查是否已存在用户
	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("admin user already exists, nothing to do")
		return
	}

	// 创建默认管理员用户
	password := "admin123" // 默认密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password:", err)
	}

	user := db.User{
		Username: "admin",
		Password: string(hashedPassword),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Fatal("failed to create user:", err)
	}

	fmt.Println("default admin user created")
	fmt.Println("username: admin")
	fmt.Println("password: admin123")
}
