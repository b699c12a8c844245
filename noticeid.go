package twitchchat

// NoticeID is the closed set of documented Twitch "msg-id" values sent on
// NOTICE. Only a handful drive runner behavior (see handleNotice in
// runner.go); the rest
// are informational and exist so callers can switch on them without string
// comparisons. An unrecognized value decodes to NoticeUnknown with the raw
// string preserved.
type NoticeID int

const (
	NoticeUnknown NoticeID = iota
	NoticeAlreadyBanned
	NoticeAlreadyEmoteOnlyOff
	NoticeAlreadyEmoteOnlyOn
	NoticeAlreadyR9kOff
	NoticeAlreadyR9kOn
	NoticeAlreadySubsOff
	NoticeAlreadySubsOn
	NoticeBadBanAdmin
	NoticeBadBanAnon
	NoticeBadBanBroadcaster
	NoticeBadBanGlobalMod
	NoticeBadBanMod
	NoticeBadBanSelf
	NoticeBadBanStaff
	NoticeBadCommercialError
	NoticeBadDeleteMessageBroadcaster
	NoticeBadDeleteMessageMod
	NoticeBadHostError
	NoticeBadHostHosting
	NoticeBadHostRateExceeded
	NoticeBadHostRejected
	NoticeBadHostSelf
	NoticeBadMarkerClient
	NoticeBadModBanned
	NoticeBadModMod
	NoticeBadSlowDuration
	NoticeBadTimeoutAdmin
	NoticeBadTimeoutAnon
	NoticeBadTimeoutBroadcaster
	NoticeBadTimeoutDuration
	NoticeBadTimeoutGlobalMod
	NoticeBadTimeoutMod
	NoticeBadTimeoutSelf
	NoticeBadTimeoutStaff
	NoticeBadUnbanNoBan
	NoticeBadUnhostError
	NoticeBadUnmodMod
	NoticeBanSuccess
	NoticeCmdsAvailable
	NoticeColorChanged
	NoticeCommercialSuccess
	NoticeDeleteMessageSuccess
	NoticeEmoteOnlyOff
	NoticeEmoteOnlyOn
	NoticeFollowersOff
	NoticeFollowersOn
	NoticeFollowersOnZero
	NoticeHostOff
	NoticeHostOn
	NoticeHostSuccess
	NoticeHostSuccessViewers
	NoticeHostTargetWentOffline
	NoticeHostsRemaining
	NoticeInvalidUser
	NoticeModSuccess
	NoticeMsgBanned
	NoticeMsgBadCharacters
	NoticeMsgChannelBlocked
	NoticeMsgChannelSuspended
	NoticeMsgDuplicate
	NoticeMsgEmoteonly
	NoticeMsgFacebook
	NoticeMsgFollowersonly
	NoticeMsgFollowersonlyFollowed
	NoticeMsgFollowersonlyZero
	NoticeMsgR9k
	NoticeMsgRatelimit
	NoticeMsgRejected
	NoticeMsgRejectedMandatory
	NoticeMsgRoomNotFound
	NoticeMsgSlowmode
	NoticeMsgSubsonly
	NoticeMsgSuspended
	NoticeMsgTimedout
	NoticeMsgVerifiedEmail
	NoticeNoHelp
	NoticeNoMods
	NoticeNotHosting
	NoticeNoPermission
	NoticeR9kOff
	NoticeR9kOn
	NoticeRaidErrorAlreadyRaiding
	NoticeRaidErrorForbidden
	NoticeRaidErrorSelf
	NoticeRaidErrorTooManyViewers
	NoticeRaidErrorUnexpected
	NoticeRaidNoticeMature
	NoticeRaidNoticeRestrictedChat
	NoticeRoomMods
	NoticeSlowOff
	NoticeSlowOn
	NoticeSubsOff
	NoticeSubsOn
	NoticeTimeoutNoTimeout
	NoticeTimeoutSuccess
	NoticeTosBan
	NoticeTurboOnlyColor
	NoticeUnbanSuccess
	NoticeUnmodSuccess
	NoticeUnraidErrorNoActiveRaid
	NoticeUnraidErrorUnexpected
	NoticeUnraidSuccess
	NoticeUnrecognizedCmd
	NoticeUnsupportedChatroomsCmd
	NoticeUntimeoutBanned
	NoticeUntimeoutSuccess
	NoticeUsageBan
	NoticeUsageClear
	NoticeUsageColor
	NoticeUsageCommercial
	NoticeUsageDisconnect
	NoticeUsageEmoteOnlyOff
	NoticeUsageEmoteOnlyOn
	NoticeUsageFollowersOff
	NoticeUsageFollowersOn
	NoticeUsageHelp
	NoticeUsageHost
	NoticeUsageMarker
	NoticeUsageMe
	NoticeUsageMod
	NoticeUsageMods
	NoticeUsageR9kOff
	NoticeUsageR9kOn
	NoticeUsageRaid
	NoticeUsageSlowOff
	NoticeUsageSlowOn
	NoticeUsageSubsOff
	NoticeUsageSubsOn
	NoticeUsageTimeout
	NoticeUsageUnban
	NoticeUsageUnhost
	NoticeUsageUnmod
	NoticeUsageUnraid
	NoticeUsageUntimeout
	NoticeWhisperBanned
	NoticeWhisperBannedRecipient
	NoticeWhisperInvalidArgs
	NoticeWhisperInvalidLogin
	NoticeWhisperInvalidSelf
	NoticeWhisperLimitPerMin
	NoticeWhisperLimitPerSec
	NoticeWhisperRestricted
	NoticeWhisperRestrictedRecipient
)

var noticeIDByWire = map[string]NoticeID{
	"already_banned":                  NoticeAlreadyBanned,
	"already_emote_only_off":          NoticeAlreadyEmoteOnlyOff,
	"already_emote_only_on":           NoticeAlreadyEmoteOnlyOn,
	"already_r9k_off":                 NoticeAlreadyR9kOff,
	"already_r9k_on":                  NoticeAlreadyR9kOn,
	"already_subs_off":                NoticeAlreadySubsOff,
	"already_subs_on":                 NoticeAlreadySubsOn,
	"bad_ban_admin":                   NoticeBadBanAdmin,
	"bad_ban_anon":                    NoticeBadBanAnon,
	"bad_ban_broadcaster":             NoticeBadBanBroadcaster,
	"bad_ban_global_mod":              NoticeBadBanGlobalMod,
	"bad_ban_mod":                     NoticeBadBanMod,
	"bad_ban_self":                    NoticeBadBanSelf,
	"bad_ban_staff":                   NoticeBadBanStaff,
	"bad_commercial_error":            NoticeBadCommercialError,
	"bad_delete_message_broadcaster":  NoticeBadDeleteMessageBroadcaster,
	"bad_delete_message_mod":          NoticeBadDeleteMessageMod,
	"bad_host_error":                  NoticeBadHostError,
	"bad_host_hosting":                NoticeBadHostHosting,
	"bad_host_rate_exceeded":          NoticeBadHostRateExceeded,
	"bad_host_rejected":               NoticeBadHostRejected,
	"bad_host_self":                   NoticeBadHostSelf,
	"bad_marker_client":               NoticeBadMarkerClient,
	"bad_mod_banned":                  NoticeBadModBanned,
	"bad_mod_mod":                     NoticeBadModMod,
	"bad_slow_duration":               NoticeBadSlowDuration,
	"bad_timeout_admin":               NoticeBadTimeoutAdmin,
	"bad_timeout_anon":                NoticeBadTimeoutAnon,
	"bad_timeout_broadcaster":         NoticeBadTimeoutBroadcaster,
	"bad_timeout_duration":            NoticeBadTimeoutDuration,
	"bad_timeout_global_mod":          NoticeBadTimeoutGlobalMod,
	"bad_timeout_mod":                 NoticeBadTimeoutMod,
	"bad_timeout_self":                NoticeBadTimeoutSelf,
	"bad_timeout_staff":               NoticeBadTimeoutStaff,
	"bad_unban_no_ban":                NoticeBadUnbanNoBan,
	"bad_unhost_error":                NoticeBadUnhostError,
	"bad_unmod_mod":                   NoticeBadUnmodMod,
	"ban_success":                     NoticeBanSuccess,
	"cmds_available":                  NoticeCmdsAvailable,
	"color_changed":                   NoticeColorChanged,
	"commercial_success":              NoticeCommercialSuccess,
	"delete_message_success":          NoticeDeleteMessageSuccess,
	"emote_only_off":                  NoticeEmoteOnlyOff,
	"emote_only_on":                   NoticeEmoteOnlyOn,
	"followers_off":                   NoticeFollowersOff,
	"followers_on":                    NoticeFollowersOn,
	"followers_on_zero":               NoticeFollowersOnZero,
	"host_off":                        NoticeHostOff,
	"host_on":                         NoticeHostOn,
	"host_success":                    NoticeHostSuccess,
	"host_success_viewers":            NoticeHostSuccessViewers,
	"host_target_went_offline":        NoticeHostTargetWentOffline,
	"hosts_remaining":                 NoticeHostsRemaining,
	"invalid_user":                    NoticeInvalidUser,
	"mod_success":                     NoticeModSuccess,
	"msg_banned":                      NoticeMsgBanned,
	"msg_bad_characters":              NoticeMsgBadCharacters,
	"msg_channel_blocked":             NoticeMsgChannelBlocked,
	"msg_channel_suspended":           NoticeMsgChannelSuspended,
	"msg_duplicate":                   NoticeMsgDuplicate,
	"msg_emoteonly":                   NoticeMsgEmoteonly,
	"msg_facebook":                    NoticeMsgFacebook,
	"msg_followersonly":               NoticeMsgFollowersonly,
	"msg_followersonly_followed":      NoticeMsgFollowersonlyFollowed,
	"msg_followersonly_zero":          NoticeMsgFollowersonlyZero,
	"msg_r9k":                         NoticeMsgR9k,
	"msg_ratelimit":                   NoticeMsgRatelimit,
	"msg_rejected":                    NoticeMsgRejected,
	"msg_rejected_mandatory":          NoticeMsgRejectedMandatory,
	"msg_room_not_found":              NoticeMsgRoomNotFound,
	"msg_slowmode":                    NoticeMsgSlowmode,
	"msg_subsonly":                    NoticeMsgSubsonly,
	"msg_suspended":                   NoticeMsgSuspended,
	"msg_timedout":                    NoticeMsgTimedout,
	"msg_verified_email":              NoticeMsgVerifiedEmail,
	"no_help":                         NoticeNoHelp,
	"no_mods":                         NoticeNoMods,
	"not_hosting":                     NoticeNotHosting,
	"no_permission":                   NoticeNoPermission,
	"r9k_off":                         NoticeR9kOff,
	"r9k_on":                         NoticeR9kOn,
	"raid_error_already_raiding":      NoticeRaidErrorAlreadyRaiding,
	"raid_error_forbidden":           NoticeRaidErrorForbidden,
	"raid_error_self":                NoticeRaidErrorSelf,
	"raid_error_too_many_viewers":    NoticeRaidErrorTooManyViewers,
	"raid_error_unexpected":          NoticeRaidErrorUnexpected,
	"raid_notice_mature":             NoticeRaidNoticeMature,
	"raid_notice_restricted_chat":    NoticeRaidNoticeRestrictedChat,
	"room_mods":                      NoticeRoomMods,
	"slow_off":                       NoticeSlowOff,
	"slow_on":                        NoticeSlowOn,
	"subs_off":                       NoticeSubsOff,
	"subs_on":                        NoticeSubsOn,
	"timeout_no_timeout":             NoticeTimeoutNoTimeout,
	"timeout_success":                NoticeTimeoutSuccess,
	"tos_ban":                        NoticeTosBan,
	"turbo_only_color":               NoticeTurboOnlyColor,
	"unban_success":                  NoticeUnbanSuccess,
	"unmod_success":                  NoticeUnmodSuccess,
	"unraid_error_no_active_raid":    NoticeUnraidErrorNoActiveRaid,
	"unraid_error_unexpected":        NoticeUnraidErrorUnexpected,
	"unraid_success":                 NoticeUnraidSuccess,
	"unrecognized_cmd":               NoticeUnrecognizedCmd,
	"unsupported_chatrooms_cmd":      NoticeUnsupportedChatroomsCmd,
	"untimeout_banned":               NoticeUntimeoutBanned,
	"untimeout_success":              NoticeUntimeoutSuccess,
	"usage_ban":                      NoticeUsageBan,
	"usage_clear":                    NoticeUsageClear,
	"usage_color":                    NoticeUsageColor,
	"usage_commercial":               NoticeUsageCommercial,
	"usage_disconnect":               NoticeUsageDisconnect,
	"usage_emote_only_off":           NoticeUsageEmoteOnlyOff,
	"usage_emote_only_on":            NoticeUsageEmoteOnlyOn,
	"usage_followers_off":            NoticeUsageFollowersOff,
	"usage_followers_on":             NoticeUsageFollowersOn,
	"usage_help":                     NoticeUsageHelp,
	"usage_host":                     NoticeUsageHost,
	"usage_marker":                   NoticeUsageMarker,
	"usage_me":                       NoticeUsageMe,
	"usage_mod":                      NoticeUsageMod,
	"usage_mods":                     NoticeUsageMods,
	"usage_r9k_off":                  NoticeUsageR9kOff,
	"usage_r9k_on":                   NoticeUsageR9kOn,
	"usage_raid":                     NoticeUsageRaid,
	"usage_slow_off":                 NoticeUsageSlowOff,
	"usage_slow_on":                  NoticeUsageSlowOn,
	"usage_subs_off":                 NoticeUsageSubsOff,
	"usage_subs_on":                  NoticeUsageSubsOn,
	"usage_timeout":                  NoticeUsageTimeout,
	"usage_unban":                    NoticeUsageUnban,
	"usage_unhost":                   NoticeUsageUnhost,
	"usage_unmod":                    NoticeUsageUnmod,
	"usage_unraid":                   NoticeUsageUnraid,
	"usage_untimeout":                NoticeUsageUntimeout,
	"whisper_banned":                 NoticeWhisperBanned,
	"whisper_banned_recipient":       NoticeWhisperBannedRecipient,
	"whisper_invalid_args":           NoticeWhisperInvalidArgs,
	"whisper_invalid_login":          NoticeWhisperInvalidLogin,
	"whisper_invalid_self":           NoticeWhisperInvalidSelf,
	"whisper_limit_per_min":          NoticeWhisperLimitPerMin,
	"whisper_limit_per_sec":          NoticeWhisperLimitPerSec,
	"whisper_restricted":             NoticeWhisperRestricted,
	"whisper_restricted_recipient":   NoticeWhisperRestrictedRecipient,
}

// ParseNoticeID resolves a "msg-id" tag value to its NoticeID, and the raw
// string for when the id is not recognized (NoticeUnknown).
func ParseNoticeID(wire string) (id NoticeID, raw string) {
	if id, ok := noticeIDByWire[wire]; ok {
		return id, wire
	}
	return NoticeUnknown, wire
}
