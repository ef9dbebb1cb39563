package services

import (
	"fmt"
	"strings"

	"netmotive-switcher/internal/domain/entities"
	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"
)

// CommandSynthesizer는 (OS 계열, 어댑터, 프로파일)을 OS별 명령 시퀀스로
// 변환하는 순수 서비스입니다. 부수 효과와 I/O가 없습니다.
type CommandSynthesizer struct{}

// NewCommandSynthesizer는 새로운 CommandSynthesizer를 생성합니다
func NewCommandSynthesizer() *CommandSynthesizer {
	return &CommandSynthesizer{}
}

// Synthesize는 프로파일을 어댑터에 적용하기 위한 명령 문자열들을 실행
// 순서대로 반환합니다. 어댑터 이름과 프로파일 값은 따옴표 처리 외에는
// 이스케이프 없이 그대로 삽입됩니다.
func (s *CommandSynthesizer) Synthesize(family interfaces.OSFamily, adapterName string, profile entities.Profile) ([]string, error) {
	switch family {
	case interfaces.OSFamilyWindows:
		return s.synthesizeWindows(adapterName, profile), nil

	case interfaces.OSFamilyMac:
		return s.synthesizeMac(adapterName, profile), nil

	default:
		return nil, errors.NewUnsupportedPlatformError(
			fmt.Sprintf("unsupported OS family: %s (only Windows and macOS are supported)", family),
		)
	}
}

func (s *CommandSynthesizer) synthesizeWindows(adapterName string, profile entities.Profile) []string {
	// DNS1 설정 명령은 DNS1이 비어있어도 항상 포함됩니다
	cmds := []string{
		fmt.Sprintf(`netsh interface ip set address name="%s" static %s %s %s`,
			adapterName, profile.IP, profile.Subnet, profile.Gateway),
		fmt.Sprintf(`netsh interface ip set dns name="%s" static %s`,
			adapterName, profile.DNS1),
	}
	if profile.DNS2 != "" {
		cmds = append(cmds, fmt.Sprintf(`netsh interface ip add dns name="%s" %s index=2`,
			adapterName, profile.DNS2))
	}
	return cmds
}

func (s *CommandSynthesizer) synthesizeMac(adapterName string, profile entities.Profile) []string {
	cmds := []string{
		fmt.Sprintf(`networksetup -setmanual "%s" %s %s %s`,
			adapterName, profile.IP, profile.Subnet, profile.Gateway),
	}
	if profile.HasDNS() {
		cmds = append(cmds, fmt.Sprintf(`networksetup -setdnsservers "%s" %s`,
			adapterName, strings.Join(profile.DNSServers(), " ")))
	}
	return cmds
}
