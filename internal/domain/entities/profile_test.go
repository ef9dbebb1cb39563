package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name      string
		profile   Profile
		wantError bool
		errorType error
	}{
		{
			name: "유효한 프로파일",
			profile: Profile{
				Name:    "OfficeLAN",
				IP:      "192.168.1.100",
				Subnet:  "255.255.255.0",
				Gateway: "192.168.1.1",
				DNS1:    "8.8.8.8",
				DNS2:    "1.1.1.1",
			},
			wantError: false,
		},
		{
			name: "빈 프로파일 이름",
			profile: Profile{
				IP:      "10.0.0.5",
				Subnet:  "255.255.255.0",
				Gateway: "10.0.0.1",
			},
			wantError: true,
			errorType: ErrEmptyProfileName,
		},
		{
			name: "이름만 있는 프로파일도 유효함 (값 구문 검증 없음)",
			profile: Profile{
				Name: "Minimal",
			},
			wantError: false,
		},
		{
			name: "잘못된 형식의 IP도 검증하지 않음",
			profile: Profile{
				Name: "Weird",
				IP:   "not-an-ip",
			},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errorType)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfile_DNSServers(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    []string
		hasDNS  bool
	}{
		{
			name:    "DNS 없음",
			profile: Profile{Name: "p"},
			want:    nil,
			hasDNS:  false,
		},
		{
			name:    "DNS1만 설정",
			profile: Profile{Name: "p", DNS1: "8.8.8.8"},
			want:    []string{"8.8.8.8"},
			hasDNS:  true,
		},
		{
			name:    "DNS2만 설정",
			profile: Profile{Name: "p", DNS2: "1.1.1.1"},
			want:    []string{"1.1.1.1"},
			hasDNS:  true,
		},
		{
			name:    "DNS1과 DNS2 모두 설정시 DNS1 우선",
			profile: Profile{Name: "p", DNS1: "8.8.8.8", DNS2: "1.1.1.1"},
			want:    []string{"8.8.8.8", "1.1.1.1"},
			hasDNS:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.DNSServers())
			assert.Equal(t, tt.hasDNS, tt.profile.HasDNS())
		})
	}
}
