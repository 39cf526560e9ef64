package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/ikkim/cosmos-backend/config"
	"github.com/ikkim/cosmos-backend/internal/app/model"
	"github.com/ikkim/cosmos-backend/internal/app/repository"
	"github.com/ikkim/cosmos-backend/internal/db"
	"github.com/ikkim/cosmos-backend/pkg/util"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// 시드 데이터로 만든 은하의 소유자 계정
const (
	seedOwnerEmail    = "system@cosmos.local"
	seedOwnerNickname = "코스모스"
)

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := repository.NewUserRepository(db.GetDB())
	galaxyRepo := repository.NewGalaxyRepository(db.GetDB())

	// 시드 은하의 소유자 계정 확보
	owner, err := ensureSeedOwner(userRepo)
	if err != nil {
		log.Fatal("Failed to ensure seed owner:", err)
	}

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	galaxies, err := readGalaxiesFromXLSX(filePath, owner.ID)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total galaxies to import: %d\n", len(galaxies))

	// 사용자 확인
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	// 배치로 저장
	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := galaxyRepo.BulkCreate(galaxies, batchSize); err != nil {
		log.Fatal("Failed to bulk create galaxies:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total galaxies imported: %d\n", len(galaxies))
}

// ensureSeedOwner 시드 소유자 계정을 조회하고 없으면 생성
func ensureSeedOwner(userRepo repository.UserRepository) (*model.User, error) {
	user, err := userRepo.FindByEmail(seedOwnerEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	password := os.Getenv("SEED_OWNER_PASSWORD")
	if password == "" {
		password = "cosmos-seed-" + util.GenerateNickname("pw")
	}
	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user = &model.User{
		Email:        seedOwnerEmail,
		PasswordHash: hash,
		Nickname:     seedOwnerNickname,
		Role:         model.RoleAdmin,
		Status:       model.UserStatusActive,
	}
	if err := userRepo.Create(user); err != nil {
		return nil, err
	}

	fmt.Printf("Created seed owner account: %s\n", seedOwnerEmail)
	return user, nil
}

// readGalaxiesFromXLSX XLSX 파일에서 은하 목록 읽기
// 컬럼: [0]이름 [1]설명 [2]커버이미지URL (설명/커버는 선택)
func readGalaxiesFromXLSX(filePath string, ownerID uint) ([]model.Galaxy, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var galaxies []model.Galaxy
	seenNames := make(map[string]bool) // 이름 unique 제약 대비 중복 제거
	skippedCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 1 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		description := ""
		if len(row) > 1 {
			description = strings.TrimSpace(row[1])
		}
		coverImage := ""
		if len(row) > 2 {
			coverImage = strings.TrimSpace(row[2])
		}

		if !isValidGalaxyName(name) {
			skippedCount++
			continue
		}

		if seenNames[name] {
			skippedCount++
			continue
		}
		seenNames[name] = true

		galaxies = append(galaxies, model.Galaxy{
			Name:        name,
			Description: description,
			CoverImage:  coverImage,
			OwnerID:     ownerID,
			Status:      model.GalaxyStatusActive,
		})

		if len(galaxies)%500 == 0 {
			fmt.Printf("Processed %d galaxies...\n", len(galaxies))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid galaxies: %d\n", len(galaxies))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return galaxies, nil
}

// isValidGalaxyName 은하 이름이 유효한지 검증
func isValidGalaxyName(name string) bool {
	// 최소 길이 체크 (2글자 미만 제외)
	nameRunes := []rune(name)
	if len(nameRunes) < 2 || len(nameRunes) > 50 {
		return false
	}

	// 숫자만 있는 경우 제외
	numOnlyReg := regexp.MustCompile(`^[0-9]+$`)
	if numOnlyReg.MatchString(name) {
		return false
	}

	// 특수문자만 있는 경우 제외 (공백, 구두점, 기호만)
	specialOnlyReg := regexp.MustCompile(`^[\p{P}\p{S}\s]+$`)
	if specialOnlyReg.MatchString(name) {
		return false
	}

	return true
}
