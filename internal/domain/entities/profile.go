package entities

import "errors"

// Profile은 정적 네트워크 설정 프로파일의 도메인 엔티티입니다.
// 필드 태그는 profiles.json에 저장되는 필드 이름과 동일합니다.
type Profile struct {
	Name    string `json:"ProfileName"`
	IP      string `json:"IP"`
	Subnet  string `json:"Subnet"`
	Gateway string `json:"Gateway"`
	DNS1    string `json:"DNS1,omitempty"`
	DNS2    string `json:"DNS2,omitempty"`
}

var (
	ErrEmptyProfileName = errors.New("프로파일 이름이 비어있음")
)

// Validate는 Profile의 유효성을 검증합니다.
// IP/서브넷/게이트웨이 값은 그대로 저장되며 구문 검증하지 않습니다.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return ErrEmptyProfileName
	}
	return nil
}

// HasDNS는 하나 이상의 DNS 항목이 설정되어 있는지 확인합니다.
func (p *Profile) HasDNS() bool {
	return p.DNS1 != "" || p.DNS2 != ""
}

// DNSServers는 비어있지 않은 DNS 항목들을 순서대로 반환합니다 (DNS1 우선).
func (p *Profile) DNSServers() []string {
	var servers []string
	if p.DNS1 != "" {
		servers = append(servers, p.DNS1)
	}
	if p.DNS2 != "" {
		servers = append(servers, p.DNS2)
	}
	return servers
}
