package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DecorateHTML 为图片加懒加载和防盗链属性，并给表格包一层可横向滚动的容器
func DecorateHTML(htmlStr string) string {
	if htmlStr == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return htmlStr
	}

	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		s.SetAttr("referrerpolicy", "no-referrer")
		s.SetAttr("loading", "lazy")
	})

	doc.Find("table").Each(func(i int, s *goquery.Selection) {
		if s.Parent().HasClass("table-wrapper") {
			return
		}
		s.WrapHtml(`<div class="table-wrapper"></div>`)
	})

	// goquery 会补全 html/body，只取 body 内容
	out, err := doc.Find("body").Html()
	if err != nil || out == "" {
		return htmlStr
	}
	return out
}
