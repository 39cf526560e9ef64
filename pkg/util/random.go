package util

import (
	"fmt"
	"math/rand"
)

// GenerateRandomNumber min과 max 사이(포함)의 난수 생성
func GenerateRandomNumber(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// GenerateNickname 기본 닉네임 생성 (예: 탐험가_4821)
func GenerateNickname(prefix string) string {
	return fmt.Sprintf("%s_%04d", prefix, GenerateRandomNumber(0, 9999))
}
