// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// WelcomeText greets the user after the conversation is reset.
const WelcomeText = "안녕하세요! 아이와 함께할 수 있는 나들이 장소를 추천해드릴게요!"

// ApologyText replaces a reply when the backend could not be reached or
// answered with something unusable.
const ApologyText = "죄송해요, 일시적인 오류가 발생했어요. 다시 시도해주세요. 😢"

// ExamplePrompts are offered before the first message is sent.
var ExamplePrompts = []string{
	"🌳 주말에 아이랑 갈만한 부산 공원 추천",
	"🎨 비 오는 날 서울 실내 체험장 알려줘",
	"🚴 성수동 근처 자전거 탈 수 있는 곳",
}

// TypingPhrases are shown in order while a reply is pending. The last
// phrase stays until the reply arrives.
var TypingPhrases = []string{
	"공공 장소를 찾는중..",
	"날씨 정보를 얻어오는 중..",
	"응답을 생성하는 중..",
}

// DefaultTypingInterval is the time each typing phrase stays on screen.
const DefaultTypingInterval = 4 * time.Second

// Screen labels.
const (
	AppTitle         = "키즈 액티비티 가이드🍃"
	HeroHeadline     = "아이와 주말 나들이 어때요?"
	HeroSubtitle     = "지역·날씨·아이 연령에 맞는 장소를 챗봇이 추천해드릴게요."
	InputPlaceholder = "어디로 나들이 가고 싶으신가요?"
	ClearLabel       = "대화 초기화"
	MapLinkLabel     = "지도 크게 보기"
)
