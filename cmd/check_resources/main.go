// check_resources 检查资源清单中的每张图片是否存在且能够解码
//
// 用法：
//
//	go run ./cmd/check_resources [-manifest assets/config/resources.yaml] [-resources resources]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/pvcovid/pkg/game"
)

func main() {
	manifest := flag.String("manifest", "assets/config/resources.yaml", "资源清单路径（不存在时使用内置清单）")
	resourcesDir := flag.String("resources", "", "图片资源目录（覆盖清单中的 base_path）")
	flag.Parse()

	rm := game.NewResourceManager()
	if err := rm.LoadResourceConfig(*manifest); err != nil {
		fmt.Printf("❌ 资源清单加载失败: %v\n", err)
		os.Exit(1)
	}
	rm.SetBasePath(*resourcesDir)

	fmt.Printf("资源目录: %s\n", rm.BasePath())
	fmt.Printf("必需图片: %d\n", len(game.RequiredImageIDs))

	problems := rm.Validate()
	if len(problems) == 0 {
		fmt.Printf("✅ 所有图片都存在且可以解码\n")
		return
	}

	for _, err := range problems {
		fmt.Printf("❌ %v\n", err)
	}
	fmt.Printf("❌ 共有 %d 张图片不可用\n", len(problems))
	os.Exit(1)
}
