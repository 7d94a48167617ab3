package util

import (
	"github.com/onsi/ginkgo/v2"
)

func GPrintlnT(title string, v ...interface{}) {
	ginkgo.GinkgoWriter.Print(title + " : ")
	ginkgo.GinkgoWriter.Println(v...)
}

