package strategy

import (
	"fmt"

	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/universe"
	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy/indicator"
)

// Family 전략 패밀리 (닫힌 집합, 서브클래싱 대신 데이터로 구분)
type Family string

const (
	FamilyTrendBreakout Family = "trend-breakout" // SEPA / VCP 돌파
	FamilyStage         Family = "stage"          // 와인스타인 스테이지
	FamilyMeanReversion Family = "mean-reversion" // 볼린저 + RSI
)

// Config 전략 설정값 (기간, 배수, 퍼센트 임계값)
//
// One parametrized engine per family; market variants differ only in
// the numbers carried here. Presets are distinct and documented, not
// merged - the variants disagree on thresholds on purpose (the Korean
// market presets demand a stronger confirmed demand shock).
type Config struct {
	Name   string `yaml:"name"`
	Family Family `yaml:"family"`
	Market string `yaml:"market"`
	Weekly bool   `yaml:"weekly"` // 주봉 변환 여부 (와인스타인)

	Indicator indicator.Config `yaml:"-"`

	// 트렌드 템플릿
	LowClearancePct  float64 `yaml:"low_clearance_pct"`  // 52주 저가 대비 최소 상승폭 (0.25~0.30)
	HighProximityPct float64 `yaml:"high_proximity_pct"` // 52주 고가 대비 허용 이격 (0.25)
	MinRS            float64 `yaml:"min_rs"`             // 상대강도 최소값 (0)

	// 스테이지 분류
	StageVolumeMult    float64 `yaml:"stage_volume_mult"`    // 거래량 폭증 배수 (2.0)
	StageHighProximity float64 `yaml:"stage_high_proximity"` // 고가 근접 비율 (0.75)

	// VCP
	VCPTightPct       float64 `yaml:"vcp_tight_pct"`       // 마지막 세그먼트 수축 한계 (0.07~0.08)
	VolDryUpFrac      float64 `yaml:"vol_dry_up_frac"`     // 거래량 절벽 비율 (0.4~0.6)
	PivotProximityPct float64 `yaml:"pivot_proximity_pct"` // 피벗 대비 허용 이격 (0.05~0.07)

	// 돌파
	VolSurgeMult float64 `yaml:"vol_surge_mult"` // 1.4~1.5 (미국) | 3.0~3.5 (한국)

	// 청산
	StopLossPct        float64 `yaml:"stop_loss_pct"`        // 고정 손절 (0.07~0.08)
	TakeProfitPct      float64 `yaml:"take_profit_pct"`      // 고정 익절 (손절의 3배)
	TrailTier1Pct      float64 `yaml:"trail_tier1_pct"`      // 하위 티어 수익 기준 (0.15)
	TrailTier2Pct      float64 `yaml:"trail_tier2_pct"`      // 상위 티어 수익 기준 (0.30~0.50)
	TrailOffPeakPct    float64 `yaml:"trail_off_peak_pct"`   // 고점 대비 트레일 폭 (0.08~0.10)
	TrailActivationPct float64 `yaml:"trail_activation_pct"` // 트레일 활성화 최소 고점 수익 (0.15)
	BreakevenTrigger   float64 `yaml:"breakeven_trigger"`    // 본전 방어 발동 고점 수익 (0.10)
	BreakevenBandPct   float64 `yaml:"breakeven_band_pct"`   // 본전 허용 밴드 (±0.005)
	SafeZonePct        float64 `yaml:"safe_zone_pct"`        // 한국형 본절 방어선 (+0.02)

	// 신뢰도 가중치: 패턴 품질 / 거래량 강도 / 극값 근접도
	ConfPatternW   float64 `yaml:"conf_pattern_w"`
	ConfVolumeW    float64 `yaml:"conf_volume_w"`
	ConfProximityW float64 `yaml:"conf_proximity_w"`
	ConfVolK       float64 `yaml:"conf_vol_k"` // 거래량 강도 분모 (기대 폭증 규모, 2~5)

	// 평균 회귀 (볼린저 + RSI)
	BBPeriod      int     `yaml:"bb_period"`
	BBStd         float64 `yaml:"bb_std"`
	RSIPeriod     int     `yaml:"rsi_period"`
	RSIOversold   float64 `yaml:"rsi_oversold"`
	RSIOverbought float64 `yaml:"rsi_overbought"`
}

// MinBars 신호 생성에 필요한 최소 봉 수
func (c Config) MinBars() int {
	if c.Family == FamilyMeanReversion {
		n := c.BBPeriod
		if c.RSIPeriod+1 > n {
			n = c.RSIPeriod + 1
		}
		return n + 1
	}
	return c.Indicator.MinBars() + 1
}

// Preset names
const (
	PresetSEPAUS         = "sepa-us"
	PresetSEPAAggressive = "sepa-aggressive"
	PresetSEPAKR         = "sepa-kr"
	PresetStageWeinstein = "stage-weinstein"
	PresetStageKR        = "stage-kr"
	PresetBollingerRSI   = "bollinger-rsi"
)

// Preset returns a named strategy preset.
func Preset(name string) (Config, error) {
	switch name {
	case PresetSEPAUS:
		return SEPAUS(), nil
	case PresetSEPAAggressive:
		return SEPAAggressive(), nil
	case PresetSEPAKR:
		return SEPAKR(), nil
	case PresetStageWeinstein:
		return StageWeinstein(), nil
	case PresetStageKR:
		return StageKR(), nil
	case PresetBollingerRSI:
		return BollingerRSI(), nil
	}
	return Config{}, fmt.Errorf("strategy: unknown preset %q", name)
}

// PresetNames 등록된 프리셋 이름 목록
func PresetNames() []string {
	return []string{
		PresetSEPAUS, PresetSEPAAggressive, PresetSEPAKR,
		PresetStageWeinstein, PresetStageKR, PresetBollingerRSI,
	}
}

// DefaultForMarket 시장별 기본 프리셋
func DefaultForMarket(market string) Config {
	if market == universe.MarketKR {
		return SEPAKR()
	}
	return SEPAUS()
}

// SEPAUS 미너비니 SEPA (미국 시장 기본형)
//
// 손절 7% / 익절 21% - the 3x risk:reward ratio is a design constant,
// not a coincidence. Change one, change both.
func SEPAUS() Config {
	return Config{
		Name:   PresetSEPAUS,
		Family: FamilyTrendBreakout,
		Market: universe.MarketUS,
		Indicator: indicator.Config{
			SMAShort:        50,
			SMAMid:          150,
			SMALong:         200,
			EMAFast:         10,
			EMASlow:         20,
			SlopeLookback:   20,
			RSLookback:      30,
			ExtremeLookback: 252,
			PivotLookback:   10,
			VolSurgeWindow:  5,
			VolBaseWindow:   50,
			SegmentBars:     10,
		},
		LowClearancePct:  0.25,
		HighProximityPct: 0.25,
		MinRS:            0,

		VCPTightPct:       0.08,
		VolDryUpFrac:      0.6,
		PivotProximityPct: 0.05,
		VolSurgeMult:      1.5,

		StopLossPct:   0.07,
		TakeProfitPct: 0.21,

		ConfPatternW:   0.4,
		ConfVolumeW:    0.3,
		ConfProximityW: 0.3,
		ConfVolK:       2,
	}
}

// SEPAAggressive 고변동성 장세용 공격형 (차등 트레일링 스탑)
func SEPAAggressive() Config {
	cfg := SEPAUS()
	cfg.Name = PresetSEPAAggressive
	cfg.VCPTightPct = 0.08
	cfg.VolDryUpFrac = 0.5
	cfg.VolSurgeMult = 1.5

	cfg.StopLossPct = 0.08
	cfg.TakeProfitPct = 0 // 고정 익절 없음, 트레일링으로만 청산
	cfg.TrailTier1Pct = 0.15
	cfg.TrailTier2Pct = 0.50
	cfg.TrailOffPeakPct = 0.10
	cfg.TrailActivationPct = 0.15
	cfg.BreakevenTrigger = 0.10
	cfg.BreakevenBandPct = 0.005

	cfg.ConfPatternW = 0.6
	cfg.ConfVolumeW = 0.4
	cfg.ConfProximityW = 0
	cfg.ConfVolK = 3
	return cfg
}

// SEPAKR 한국형 미너비니 (240일선 정배열 + 3.5배 수급 폭발)
//
// 한국 시장은 더 강한 수요 충격 확인을 요구한다: 거래량 3.5배,
// 수축 7%, 절벽 40%.
func SEPAKR() Config {
	return Config{
		Name:   PresetSEPAKR,
		Family: FamilyTrendBreakout,
		Market: universe.MarketKR,
		Indicator: indicator.Config{
			SMAShort:        50,
			SMAMid:          120,
			SMALong:         240,
			EMAFast:         10,
			EMASlow:         20,
			SlopeLookback:   20,
			RSLookback:      30,
			ExtremeLookback: 252,
			PivotLookback:   10,
			VolSurgeWindow:  3,
			VolBaseWindow:   20,
			SegmentBars:     10,
		},
		LowClearancePct:  0.30,
		HighProximityPct: 0.25,
		MinRS:            0,

		VCPTightPct:       0.07,
		VolDryUpFrac:      0.4,
		PivotProximityPct: 0.07,
		VolSurgeMult:      3.5,

		StopLossPct:   0.07,
		TakeProfitPct: 0.25,

		TrailTier2Pct:      0.30,
		TrailActivationPct: 0.15,
		TrailOffPeakPct:    0.08,
		BreakevenTrigger:   0.10,
		SafeZonePct:        0.02,

		ConfPatternW:   0.6,
		ConfVolumeW:    0.4,
		ConfProximityW: 0,
		ConfVolK:       5,
	}
}

// StageWeinstein 와인스타인 스테이지 분석 (주봉, 30주선)
func StageWeinstein() Config {
	return Config{
		Name:   PresetStageWeinstein,
		Family: FamilyStage,
		Market: universe.MarketUS,
		Weekly: true,
		Indicator: indicator.Config{
			SMAShort:        10,
			SMAMid:          20,
			SMALong:         30, // 30주선
			EMAFast:         10,
			EMASlow:         20,
			SlopeLookback:   5,
			RSLookback:      30,
			ExtremeLookback: 52,
			PivotLookback:   10,
			VolSurgeWindow:  5,
			VolBaseWindow:   20,
			SegmentBars:     5,
		},
		StageVolumeMult:    2.0,
		StageHighProximity: 0.75,
		MinRS:              0,

		StopLossPct:   0.08,
		TakeProfitPct: 0.30,

		ConfPatternW:   0.5,
		ConfVolumeW:    0.2,
		ConfProximityW: 0.3,
		ConfVolK:       3,
	}
}

// StageKR 한국형 스테이지 분석 (주봉, 거래량 3배 확인)
func StageKR() Config {
	cfg := StageWeinstein()
	cfg.Name = PresetStageKR
	cfg.Market = universe.MarketKR
	cfg.StageVolumeMult = 3.0
	cfg.ConfVolK = 4
	return cfg
}

// BollingerRSI 볼린저밴드 + RSI 평균 회귀
func BollingerRSI() Config {
	return Config{
		Name:   PresetBollingerRSI,
		Family: FamilyMeanReversion,
		Market: universe.MarketUS,

		BBPeriod:      20,
		BBStd:         2,
		RSIPeriod:     14,
		RSIOversold:   30,
		RSIOverbought: 70,

		StopLossPct:   0.05,
		TakeProfitPct: 0.15,
	}
}
