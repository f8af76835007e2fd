// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

// catalogTable lists every message type of the NX-584 serial interface in
// message number order.
var catalogTable = []MessageType{
	{
		Number:      0x01,
		Key:         "interface_configuration_message",
		Name:        "Interface Configuration Message",
		Description: "This message will contain the firmware version number and other information about features currently enabled. It will be sent each time the unit is reset or programmed.",
		Length:      12,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"panel_firmware_version", 2, 4, 0, 0, PropertyString, "Firmware version", false},
			{"panel_interface_configuration_message", 6, 1, 1, 1, PropertyBit, "Interface Configuration Message", false},
			{"panel_zone_status_message", 6, 1, 4, 1, PropertyBit, "Zone Status Message", false},
			{"panel_zones_snapshot_message", 6, 1, 5, 1, PropertyBit, "Zones Snapshot Message", false},
			{"panel_partition_status_message", 6, 1, 6, 1, PropertyBit, "Partition Status Message", false},
			{"panel_partitions_snapshot_message", 6, 1, 7, 1, PropertyBit, "Partitions Snapshot Message", false},
			{"panel_system_status_message", 7, 1, 0, 1, PropertyBit, "System Status Message", false},
			{"panel_x10_message_received", 7, 1, 1, 1, PropertyBit, "X-10 Message Received", false},
			{"panel_log_event_message", 7, 1, 2, 1, PropertyBit, "Log Event Message", false},
			{"panel_keypad_message_received", 7, 1, 3, 1, PropertyBit, "Keypad Message Received", false},
			{"panel_interface_configuration_request", 8, 1, 1, 1, PropertyBit, "Interface Configuration Request", false},
			{"panel_zone_name_request", 8, 1, 3, 1, PropertyBit, "Zone Name Request", false},
			{"panel_zone_status_request", 8, 1, 4, 1, PropertyBit, "Zone Status Request", false},
			{"panel_zones_snapshot_request", 8, 1, 5, 1, PropertyBit, "Zones Snapshot Request", false},
			{"panel_partition_status_request", 8, 1, 6, 1, PropertyBit, "Partition Status Request", false},
			{"panel_partitions_snapshot_request", 8, 1, 7, 1, PropertyBit, "Partitions Snapshot Request", false},
			{"panel_system_status_request", 9, 1, 0, 1, PropertyBit, "System Status Request", false},
			{"panel_send_x10_message", 9, 1, 1, 1, PropertyBit, "Send X-10 Message", false},
			{"panel_log_event_request", 9, 1, 2, 1, PropertyBit, "Log Event Request", false},
			{"panel_send_keypad_text_message", 9, 1, 3, 1, PropertyBit, "Send Keypad Text Message", false},
			{"panel_keypad_terminal_mode_request", 9, 1, 4, 1, PropertyBit, "Keypad Terminal Mode Request", false},
			{"panel_program_data_request", 10, 1, 0, 1, PropertyBit, "Program Data Request", false},
			{"panel_program_data_command", 10, 1, 1, 1, PropertyBit, "Program Data Command", false},
			{"panel_user_information_request_with_pin", 10, 1, 2, 1, PropertyBit, "User Information Request with PIN", false},
			{"panel_user_information_request_without_pin", 10, 1, 3, 1, PropertyBit, "User Information Request without PIN", false},
			{"panel_set_user_code_command_with_pin", 10, 1, 4, 1, PropertyBit, "Set User Code Command with PIN", false},
			{"panel_set_user_code_command_without_pin", 10, 1, 5, 1, PropertyBit, "Set User Code Command without PIN", false},
			{"panel_set_user_authorization_command_with_pin", 10, 1, 6, 1, PropertyBit, "Set User Authorization Command with PIN", false},
			{"panel_set_user_authorization_command_without_pin", 10, 1, 7, 1, PropertyBit, "Set User Authorization Command without PIN", false},
			{"panel_store_communication_event_command", 11, 1, 2, 1, PropertyBit, "Store Communication Event Command", false},
			{"panel_set_clock_calendar_command", 11, 1, 3, 1, PropertyBit, "Set Clock / Calendar Command", false},
			{"panel_primary_keypad_function_with_pin", 11, 1, 4, 1, PropertyBit, "Primary Keypad Function with PIN", false},
			{"panel_primary_keypad_function_without_pin", 11, 1, 5, 1, PropertyBit, "Primary Keypad Function without PIN", false},
			{"panel_secondary_keypad_function", 11, 1, 6, 1, PropertyBit, "Secondary Keypad Function", false},
			{"panel_zone_bypass_toggle", 11, 1, 7, 1, PropertyBit, "Zone Bypass Toggle", false},
		},
	},
	{
		Number:      0x03,
		Key:         "zone_name_message",
		Name:        "Zone Name Message",
		Description: "This message will contain the 16-character name for the zone number that was requested (via Zone Name Request (23h)).",
		Length:      18,
		Direction:   DirectionIn,
		Source:      SourceZone,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"zone_number", 2, 1, 0, 0, PropertyInt, "Zone number", false},
			{"zone_name", 3, 16, 0, 0, PropertyString, "Zone name", false},
		},
	},
	{
		Number:      0x04,
		Key:         "zone_status_message",
		Name:        "Zone Status Message",
		Description: "This message will contain all information relevant to a zone in the system.",
		Length:      8,
		Direction:   DirectionIn,
		Source:      SourceZone,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"zone_number", 2, 1, 0, 0, PropertyInt, "Zone number", false},
			{"zone_partition1", 3, 1, 0, 1, PropertyBit, "Partition 1 enable", false},
			{"zone_partition2", 3, 1, 1, 1, PropertyBit, "Partition 2 enable", false},
			{"zone_partition3", 3, 1, 2, 1, PropertyBit, "Partition 3 enable", false},
			{"zone_partition4", 3, 1, 3, 1, PropertyBit, "Partition 4 enable", false},
			{"zone_partition5", 3, 1, 4, 1, PropertyBit, "Partition 5 enable", false},
			{"zone_partition6", 3, 1, 5, 1, PropertyBit, "Partition 6 enable", false},
			{"zone_partition7", 3, 1, 6, 1, PropertyBit, "Partition 7 enable", false},
			{"zone_partition8", 3, 1, 7, 1, PropertyBit, "Partition 8 enable", false},
			{"zone_fire", 4, 1, 0, 1, PropertyBit, "Fire", false},
			{"zone_24hour", 4, 1, 1, 1, PropertyBit, "24 Hour", false},
			{"zone_key_switch", 4, 1, 2, 1, PropertyBit, "Key-switch", false},
			{"zone_follower", 4, 1, 3, 1, PropertyBit, "Follower", false},
			{"zone_entry_exit_delay_1", 4, 1, 4, 1, PropertyBit, "Entry / exit delay 1", false},
			{"zone_entry_exit_delay_2", 4, 1, 5, 1, PropertyBit, "Entry / exit delay 2", false},
			{"zone_interior", 4, 1, 6, 1, PropertyBit, "Interior", false},
			{"zone_local_only", 4, 1, 7, 1, PropertyBit, "Local only", false},
			{"zone_keypad_sounder", 5, 1, 0, 1, PropertyBit, "Keypad sounder", false},
			{"zone_yelping_siren", 5, 1, 1, 1, PropertyBit, "Yelping siren", false},
			{"zone_steady_siren", 5, 1, 2, 1, PropertyBit, "Steady siren", false},
			{"zone_chime", 5, 1, 3, 1, PropertyBit, "Chime", false},
			{"zone_bypassable", 5, 1, 4, 1, PropertyBit, "Bypassable", false},
			{"zone_group_bypassable", 5, 1, 5, 1, PropertyBit, "Group bypassable", false},
			{"zone_force_armable", 5, 1, 6, 1, PropertyBit, "Force armable", false},
			{"zone_entry_guard", 5, 1, 7, 1, PropertyBit, "Entry guard", false},
			{"zone_fast_loop_response", 6, 1, 0, 1, PropertyBit, "Fast loop response", false},
			{"zone_double_eol_tamper", 6, 1, 1, 1, PropertyBit, "Double EOL tamper", false},
			{"zone_type_trouble", 6, 1, 2, 1, PropertyBit, "Trouble", false},
			{"zone_cross_zone", 6, 1, 3, 1, PropertyBit, "Cross zone", false},
			{"zone_dialer_delay", 6, 1, 4, 1, PropertyBit, "Dialer delay", false},
			{"zone_swinger_shutdown", 6, 1, 5, 1, PropertyBit, "Swinger shutdown", false},
			{"zone_restorable", 6, 1, 6, 1, PropertyBit, "Restorable", false},
			{"zone_listen_in", 6, 1, 7, 1, PropertyBit, "Listen in", false},
			{"zone_faulted", 7, 1, 0, 1, PropertyBit, "Faulted (or delayed trip)", false},
			{"zone_tampered", 7, 1, 1, 1, PropertyBit, "Tampered", false},
			{"zone_trouble", 7, 1, 2, 1, PropertyBit, "Trouble", false},
			{"zone_bypassed", 7, 1, 3, 1, PropertyBit, "Bypassed", false},
			{"zone_inhibited", 7, 1, 4, 1, PropertyBit, "Inhibited (force armed)", false},
			{"zone_low_battery", 7, 1, 5, 1, PropertyBit, "Low battery", false},
			{"zone_loss_of_supervision", 7, 1, 6, 1, PropertyBit, "Loss of supervision", false},
			{"zone_alarm_memory", 8, 1, 0, 1, PropertyBit, "Alarm memory", false},
			{"zone_bypass_memory", 8, 1, 1, 1, PropertyBit, "Bypass memory", false},
		},
	},
	{
		Number:      0x05,
		Key:         "zones_snapshot_message",
		Name:        "Zones Snapshot Message",
		Description: "This message will contain an abbreviated set of information for any group of 16 zones possible on the system. (A zone offset number will set the range of zones)",
		Length:      10,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"zone_offset", 2, 1, 0, 0, PropertyInt, "Zone offset (0= start at zone 1)", false},
			{"zone_1_faulted", 3, 1, 0, 1, PropertyBit, "Zone 1 faulted (or delayed trip)", false},
			{"zone_1_bypassed", 3, 1, 1, 1, PropertyBit, "Zone 1 bypass (or inhibited)", false},
			{"zone_1_trouble", 3, 1, 2, 1, PropertyBit, "Zone 1 trouble (tamper, low battery, or lost)", false},
			{"zone_1_alarm_memory", 3, 1, 3, 1, PropertyBit, "Zone 1 alarm memory", false},
			{"zone_2_faulted", 3, 1, 4, 1, PropertyBit, "Zone 2 faulted (or delayed trip)", false},
			{"zone_2_bypassed", 3, 1, 5, 1, PropertyBit, "Zone 2 bypass (or inhibited)", false},
			{"zone_2_trouble", 3, 1, 6, 1, PropertyBit, "Zone 2 trouble (tamper, low battery, or lost)", false},
			{"zone_2_alarm_memory", 3, 1, 7, 1, PropertyBit, "Zone 2 alarm memory", false},
			{"zone_3_faulted", 4, 1, 0, 1, PropertyBit, "Zone 3 faulted (or delayed trip)", false},
			{"zone_3_bypassed", 4, 1, 1, 1, PropertyBit, "Zone 3 bypass (or inhibited)", false},
			{"zone_3_trouble", 4, 1, 2, 1, PropertyBit, "Zone 3 trouble (tamper, low battery, or lost)", false},
			{"zone_3_alarm_memory", 4, 1, 3, 1, PropertyBit, "Zone 3 alarm memory", false},
			{"zone_4_faulted", 4, 1, 4, 1, PropertyBit, "Zone 4 faulted (or delayed trip)", false},
			{"zone_4_bypassed", 4, 1, 5, 1, PropertyBit, "Zone 4 bypass (or inhibited)", false},
			{"zone_4_trouble", 4, 1, 6, 1, PropertyBit, "Zone 4 trouble (tamper, low battery, or lost)", false},
			{"zone_4_alarm_memory", 4, 1, 7, 1, PropertyBit, "Zone 4 alarm memory", false},
			{"zone_5_faulted", 5, 1, 0, 1, PropertyBit, "Zone 5 faulted (or delayed trip)", false},
			{"zone_5_bypassed", 5, 1, 1, 1, PropertyBit, "Zone 5 bypass (or inhibited)", false},
			{"zone_5_trouble", 5, 1, 2, 1, PropertyBit, "Zone 5 trouble (tamper, low battery, or lost)", false},
			{"zone_5_alarm_memory", 5, 1, 3, 1, PropertyBit, "Zone 5 alarm memory", false},
			{"zone_6_faulted", 5, 1, 4, 1, PropertyBit, "Zone 6 faulted (or delayed trip)", false},
			{"zone_6_bypassed", 5, 1, 5, 1, PropertyBit, "Zone 6 bypass (or inhibited)", false},
			{"zone_6_trouble", 5, 1, 6, 1, PropertyBit, "Zone 6 trouble (tamper, low battery, or lost)", false},
			{"zone_6_alarm_memory", 5, 1, 7, 1, PropertyBit, "Zone 6 alarm memory", false},
			{"zone_7_faulted", 6, 1, 0, 1, PropertyBit, "Zone 7 faulted (or delayed trip)", false},
			{"zone_7_bypassed", 6, 1, 1, 1, PropertyBit, "Zone 7 bypass (or inhibited)", false},
			{"zone_7_trouble", 6, 1, 2, 1, PropertyBit, "Zone 7 trouble (tamper, low battery, or lost)", false},
			{"zone_7_alarm_memory", 6, 1, 3, 1, PropertyBit, "Zone 7 alarm memory", false},
			{"zone_8_faulted", 6, 1, 4, 1, PropertyBit, "Zone 8 faulted (or delayed trip)", false},
			{"zone_8_bypassed", 6, 1, 5, 1, PropertyBit, "Zone 8 bypass (or inhibited)", false},
			{"zone_8_trouble", 6, 1, 6, 1, PropertyBit, "Zone 8 trouble (tamper, low battery, or lost)", false},
			{"zone_8_alarm_memory", 6, 1, 7, 1, PropertyBit, "Zone 8 alarm memory", false},
			{"zone_9_faulted", 7, 1, 0, 1, PropertyBit, "Zone 9 faulted (or delayed trip)", false},
			{"zone_9_bypassed", 7, 1, 1, 1, PropertyBit, "Zone 9 bypass (or inhibited)", false},
			{"zone_9_trouble", 7, 1, 2, 1, PropertyBit, "Zone 9 trouble (tamper, low battery, or lost)", false},
			{"zone_9_alarm_memory", 7, 1, 3, 1, PropertyBit, "Zone 9 alarm memory", false},
			{"zone_10_faulted", 7, 1, 4, 1, PropertyBit, "Zone 10 faulted (or delayed trip)", false},
			{"zone_10_bypassed", 7, 1, 5, 1, PropertyBit, "Zone 10 bypass (or inhibited)", false},
			{"zone_10_trouble", 7, 1, 6, 1, PropertyBit, "Zone 10 trouble (tamper, low battery, or lost)", false},
			{"zone_10_alarm_memory", 7, 1, 7, 1, PropertyBit, "Zone 10 alarm memory", false},
			{"zone_11_faulted", 8, 1, 0, 1, PropertyBit, "Zone 11 faulted (or delayed trip)", false},
			{"zone_11_bypassed", 8, 1, 1, 1, PropertyBit, "Zone 11 bypass (or inhibited)", false},
			{"zone_11_trouble", 8, 1, 2, 1, PropertyBit, "Zone 11 trouble (tamper, low battery, or lost)", false},
			{"zone_11_alarm_memory", 8, 1, 3, 1, PropertyBit, "Zone 11 alarm memory", false},
			{"zone_12_faulted", 8, 1, 4, 1, PropertyBit, "Zone 12 faulted (or delayed trip)", false},
			{"zone_12_bypassed", 8, 1, 5, 1, PropertyBit, "Zone 12 bypass (or inhibited)", false},
			{"zone_12_trouble", 8, 1, 6, 1, PropertyBit, "Zone 12 trouble (tamper, low battery, or lost)", false},
			{"zone_12_alarm_memory", 8, 1, 7, 1, PropertyBit, "Zone 12 alarm memory", false},
			{"zone_13_faulted", 9, 1, 0, 1, PropertyBit, "Zone 13 faulted (or delayed trip)", false},
			{"zone_13_bypassed", 9, 1, 1, 1, PropertyBit, "Zone 13 bypass (or inhibited)", false},
			{"zone_13_trouble", 9, 1, 2, 1, PropertyBit, "Zone 13 trouble (tamper, low battery, or lost)", false},
			{"zone_13_alarm_memory", 9, 1, 3, 1, PropertyBit, "Zone 13 alarm memory", false},
			{"zone_14_faulted", 9, 1, 4, 1, PropertyBit, "Zone 14 faulted (or delayed trip)", false},
			{"zone_14_bypassed", 9, 1, 5, 1, PropertyBit, "Zone 14 bypass (or inhibited)", false},
			{"zone_14_trouble", 9, 1, 6, 1, PropertyBit, "Zone 14 trouble (tamper, low battery, or lost)", false},
			{"zone_14_alarm_memory", 9, 1, 7, 1, PropertyBit, "Zone 14 alarm memory", false},
			{"zone_15_faulted", 10, 1, 0, 1, PropertyBit, "Zone 15 faulted (or delayed trip)", false},
			{"zone_15_bypassed", 10, 1, 1, 1, PropertyBit, "Zone 15 bypass (or inhibited)", false},
			{"zone_15_trouble", 10, 1, 2, 1, PropertyBit, "Zone 15 trouble (tamper, low battery, or lost)", false},
			{"zone_15_alarm_memory", 10, 1, 3, 1, PropertyBit, "Zone 15 alarm memory", false},
			{"zone_16_faulted", 10, 1, 4, 1, PropertyBit, "Zone 16 faulted (or delayed trip)", false},
			{"zone_16_bypassed", 10, 1, 5, 1, PropertyBit, "Zone 16 bypass (or inhibited)", false},
			{"zone_16_trouble", 10, 1, 6, 1, PropertyBit, "Zone 16 trouble (tamper, low battery, or lost)", false},
			{"zone_16_alarm_memory", 10, 1, 7, 1, PropertyBit, "Zone 16 alarm memory", false},
		},
	},
	{
		Number:      0x06,
		Key:         "partition_status_message",
		Name:        "Partition Status Message",
		Description: "This message will contain all information relevant to a single partition in the system.",
		Length:      9,
		Direction:   DirectionIn,
		Source:      SourcePartition,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"partition_number", 2, 1, 0, 0, PropertyInt, "Partition number (0= partition 1)", false},
			{"partition_bypass_code_required", 3, 1, 0, 1, PropertyBit, "Bypass code required", false},
			{"partition_fire_trouble", 3, 1, 1, 1, PropertyBit, "Fire trouble", false},
			{"partition_fire", 3, 1, 2, 1, PropertyBit, "Fire", false},
			{"partition_pulsing_buzzer", 3, 1, 3, 1, PropertyBit, "Pulsing Buzzer", false},
			{"partition_tlm_fault_memory", 3, 1, 4, 1, PropertyBit, "TLM fault memory", false},
			{"partition_armed", 3, 1, 6, 1, PropertyBit, "Armed", false},
			{"partition_instant", 3, 1, 7, 1, PropertyBit, "Instant", false},
			{"partition_previous_alarm", 4, 1, 0, 1, PropertyBit, "Previous Alarm", false},
			{"partition_siren_on", 4, 1, 1, 1, PropertyBit, "Siren on", false},
			{"partition_steady_siren_on", 4, 1, 2, 1, PropertyBit, "Steady siren on", false},
			{"partition_alarm_memory", 4, 1, 3, 1, PropertyBit, "Alarm memory", false},
			{"partition_tamper", 4, 1, 4, 1, PropertyBit, "Tamper", false},
			{"partition_cancel_command_entered", 4, 1, 5, 1, PropertyBit, "Cancel command entered", false},
			{"partition_code_entered", 4, 1, 6, 1, PropertyBit, "Code entered", false},
			{"partition_cancel_pending", 4, 1, 7, 1, PropertyBit, "Cancel pending", false},
			{"partition_silent_exit_enabled", 5, 1, 1, 1, PropertyBit, "Silent exit enabled", false},
			{"partition_entryguard", 5, 1, 2, 1, PropertyBit, "Entryguard (stay mode)", false},
			{"partition_chime_mode_on", 5, 1, 3, 1, PropertyBit, "Chime mode on", false},
			{"partition_entry", 5, 1, 4, 1, PropertyBit, "Entry", false},
			{"partition_delay_expiration_warning", 5, 1, 5, 1, PropertyBit, "Delay expiration warning", false},
			{"partition_exit1", 5, 1, 6, 1, PropertyBit, "Exit1", false},
			{"partition_exit2", 5, 1, 7, 1, PropertyBit, "Exit2", false},
			{"partition_led_extinguish", 6, 1, 0, 1, PropertyBit, "LED extinguish", false},
			{"partition_cross_timing", 6, 1, 1, 1, PropertyBit, "Cross timing", false},
			{"partition_recent_closing_being_timed", 6, 1, 2, 1, PropertyBit, "Recent closing being timed", false},
			{"partition_exit_error_triggered", 6, 1, 4, 1, PropertyBit, "Exit error triggered", false},
			{"partition_auto_home_inhibited", 6, 1, 5, 1, PropertyBit, "Auto home inhibited", false},
			{"partition_sensor_low_battery", 6, 1, 6, 1, PropertyBit, "Sensor low battery", false},
			{"partition_sensor_lost_supervision", 6, 1, 7, 1, PropertyBit, "Sensor lost supervision", false},
			{"", 7, 1, 0, 0, PropertyInt, "Last user number", false},
			{"partition_zone_bypassed", 8, 1, 0, 1, PropertyBit, "Zone bypassed", false},
			{"partition_force_arm_triggered_by_auto_arm", 8, 1, 1, 1, PropertyBit, "Force arm triggered by auto arm", false},
			{"partition_ready_to_arm", 8, 1, 2, 1, PropertyBit, "Ready to arm", false},
			{"partition_ready_to_force_arm", 8, 1, 3, 1, PropertyBit, "Ready to force arm", false},
			{"partition_valid_pin_accepted", 8, 1, 4, 1, PropertyBit, "Valid PIN accepted", false},
			{"partition_chime_on", 8, 1, 5, 1, PropertyBit, "Chime on (sounding)", false},
			{"partition_error_beep", 8, 1, 6, 1, PropertyBit, "Error beep (triple beep)", false},
			{"partition_tone_on", 8, 1, 7, 1, PropertyBit, "Tone on (activation tone)", false},
			{"partition_entry1", 9, 1, 0, 1, PropertyBit, "Entry 1", false},
			{"partition_open_period", 9, 1, 1, 1, PropertyBit, "Open period", false},
			{"partition_alarm_sent_using_phone_number_1", 9, 1, 2, 1, PropertyBit, "Alarm sent using phone number 1", false},
			{"partition_alarm_sent_using_phone_number_2", 9, 1, 3, 1, PropertyBit, "Alarm sent using phone number 2", false},
			{"partition_alarm_sent_using_phone_number_3", 9, 1, 4, 1, PropertyBit, "Alarm sent using phone number 3", false},
			{"partition_cancel_report_is_in_the_stack", 9, 1, 5, 1, PropertyBit, "Cancel report is in the stack", false},
			{"partition_keyswitch_armed", 9, 1, 6, 1, PropertyBit, "Keyswitch armed", false},
			{"partition_delay_trip_in_progress", 9, 1, 7, 1, PropertyBit, "Delay Trip in progress (common zone)", false},
		},
	},
	{
		Number:      0x07,
		Key:         "partitions_snapshot_message",
		Name:        "Partitions Snapshot Message",
		Description: "This message will contain an abbreviated set of information for all 8 partitions on the system.",
		Length:      9,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"partition_1_valid", 2, 1, 0, 1, PropertyBit, "Partition 1 valid partition", false},
			{"", 2, 1, 1, 1, PropertyBit, "Partition 1 ready", false},
			{"", 2, 1, 2, 1, PropertyBit, "Partition 1 armed", false},
			{"", 2, 1, 3, 1, PropertyBit, "Partition 1 stay mode", false},
			{"", 2, 1, 4, 1, PropertyBit, "Partition 1 chime mode", false},
			{"", 2, 1, 5, 1, PropertyBit, "Partition 1 any entry delay", false},
			{"", 2, 1, 6, 1, PropertyBit, "Partition 1 any exit delay", false},
			{"", 2, 1, 7, 1, PropertyBit, "Partition 1 previous alarm", false},
			{"partition_2_valid", 3, 1, 0, 1, PropertyBit, "Partition 2 valid partition", false},
			{"", 3, 1, 1, 1, PropertyBit, "Partition 2 ready", false},
			{"", 3, 1, 2, 1, PropertyBit, "Partition 2 armed", false},
			{"", 3, 1, 3, 1, PropertyBit, "Partition 2 stay mode", false},
			{"", 3, 1, 4, 1, PropertyBit, "Partition 2 chime mode", false},
			{"", 3, 1, 5, 1, PropertyBit, "Partition 2 any entry delay", false},
			{"", 3, 1, 6, 1, PropertyBit, "Partition 2 any exit delay", false},
			{"", 3, 1, 7, 1, PropertyBit, "Partition 2 previous alarm", false},
			{"partition_3_valid", 4, 1, 0, 1, PropertyBit, "Partition 3 valid partition", false},
			{"", 4, 1, 1, 1, PropertyBit, "Partition 3 ready", false},
			{"", 4, 1, 2, 1, PropertyBit, "Partition 3 armed", false},
			{"", 4, 1, 3, 1, PropertyBit, "Partition 3 stay mode", false},
			{"", 4, 1, 4, 1, PropertyBit, "Partition 3 chime mode", false},
			{"", 4, 1, 5, 1, PropertyBit, "Partition 3 any entry delay", false},
			{"", 4, 1, 6, 1, PropertyBit, "Partition 3 any exit delay", false},
			{"", 4, 1, 7, 1, PropertyBit, "Partition 3 previous alarm", false},
			{"partition_4_valid", 5, 1, 0, 1, PropertyBit, "Partition 4 valid partition", false},
			{"", 5, 1, 1, 1, PropertyBit, "Partition 4 ready", false},
			{"", 5, 1, 2, 1, PropertyBit, "Partition 4 armed", false},
			{"", 5, 1, 3, 1, PropertyBit, "Partition 4 stay mode", false},
			{"", 5, 1, 4, 1, PropertyBit, "Partition 4 chime mode", false},
			{"", 5, 1, 5, 1, PropertyBit, "Partition 4 any entry delay", false},
			{"", 5, 1, 6, 1, PropertyBit, "Partition 4 any exit delay", false},
			{"", 5, 1, 7, 1, PropertyBit, "Partition 4 previous alarm", false},
			{"partition_5_valid", 6, 1, 0, 1, PropertyBit, "Partition 5 valid partition", false},
			{"", 6, 1, 1, 1, PropertyBit, "Partition 5 ready", false},
			{"", 6, 1, 2, 1, PropertyBit, "Partition 5 armed", false},
			{"", 6, 1, 3, 1, PropertyBit, "Partition 5 stay mode", false},
			{"", 6, 1, 4, 1, PropertyBit, "Partition 5 chime mode", false},
			{"", 6, 1, 5, 1, PropertyBit, "Partition 5 any entry delay", false},
			{"", 6, 1, 6, 1, PropertyBit, "Partition 5 any exit delay", false},
			{"", 6, 1, 7, 1, PropertyBit, "Partition 5 previous alarm", false},
			{"partition_6_valid", 7, 1, 0, 1, PropertyBit, "Partition 6 valid partition", false},
			{"", 7, 1, 1, 1, PropertyBit, "Partition 6 ready", false},
			{"", 7, 1, 2, 1, PropertyBit, "Partition 6 armed", false},
			{"", 7, 1, 3, 1, PropertyBit, "Partition 6 stay mode", false},
			{"", 7, 1, 4, 1, PropertyBit, "Partition 6 chime mode", false},
			{"", 7, 1, 5, 1, PropertyBit, "Partition 6 any entry delay", false},
			{"", 7, 1, 6, 1, PropertyBit, "Partition 6 any exit delay", false},
			{"", 7, 1, 7, 1, PropertyBit, "Partition 6 previous alarm", false},
			{"partition_7_valid", 8, 1, 0, 1, PropertyBit, "Partition 7 valid partition", false},
			{"", 8, 1, 1, 1, PropertyBit, "Partition 7 ready", false},
			{"", 8, 1, 2, 1, PropertyBit, "Partition 7 armed", false},
			{"", 8, 1, 3, 1, PropertyBit, "Partition 7 stay mode", false},
			{"", 8, 1, 4, 1, PropertyBit, "Partition 7 chime mode", false},
			{"", 8, 1, 5, 1, PropertyBit, "Partition 7 any entry delay", false},
			{"", 8, 1, 6, 1, PropertyBit, "Partition 7 any exit delay", false},
			{"", 8, 1, 7, 1, PropertyBit, "Partition 7 previous alarm", false},
			{"partition_8_valid", 9, 1, 0, 1, PropertyBit, "Partition 8 valid partition", false},
			{"", 9, 1, 1, 1, PropertyBit, "Partition 8 ready", false},
			{"", 9, 1, 2, 1, PropertyBit, "Partition 8 armed", false},
			{"", 9, 1, 3, 1, PropertyBit, "Partition 8 stay mode", false},
			{"", 9, 1, 4, 1, PropertyBit, "Partition 8 chime mode", false},
			{"", 9, 1, 5, 1, PropertyBit, "Partition 8 any entry delay", false},
			{"", 9, 1, 6, 1, PropertyBit, "Partition 8 any exit delay", false},
			{"", 9, 1, 8, 1, PropertyBit, "Partition 8 previous alarm", false},
		},
	},
	{
		Number:      0x08,
		Key:         "system_status_message",
		Name:        "System Status Message",
		Description: "This message will contain all information relevant to the entire system.",
		Length:      12,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Panel ID number", false},
			{"", 3, 1, 0, 1, PropertyBit, "Line seizure", false},
			{"", 3, 1, 1, 1, PropertyBit, "Off hook", false},
			{"", 3, 1, 2, 1, PropertyBit, "Initial handshake received", false},
			{"", 3, 1, 3, 1, PropertyBit, "Download in progress", false},
			{"", 3, 1, 4, 1, PropertyBit, "Dialer delay in progress", false},
			{"", 3, 1, 5, 1, PropertyBit, "Using backup phone", false},
			{"", 3, 1, 6, 1, PropertyBit, "Listen in active", false},
			{"", 3, 1, 7, 1, PropertyBit, "Two way lockout", false},
			{"", 4, 1, 0, 1, PropertyBit, "Ground fault", false},
			{"", 4, 1, 1, 1, PropertyBit, "Phone fault", false},
			{"", 4, 1, 2, 1, PropertyBit, "Fail to communicate", false},
			{"", 4, 1, 3, 1, PropertyBit, "Fuse fault", false},
			{"", 4, 1, 4, 1, PropertyBit, "Box tamper", false},
			{"", 4, 1, 5, 1, PropertyBit, "Siren tamper / trouble", false},
			{"", 4, 1, 6, 1, PropertyBit, "Low Battery", false},
			{"panel_ac_fail", 4, 1, 7, 1, PropertyBit, "AC fail", false},
			{"", 5, 1, 0, 1, PropertyBit, "Expander box tamper", false},
			{"", 5, 1, 1, 1, PropertyBit, "Expander AC failure", false},
			{"", 5, 1, 2, 1, PropertyBit, "Expander low battery", false},
			{"", 5, 1, 3, 1, PropertyBit, "Expander loss of supervision", false},
			{"", 5, 1, 4, 1, PropertyBit, "Expander auxiliary output over current", false},
			{"", 5, 1, 5, 1, PropertyBit, "Auxiliary communication channel failure", false},
			{"", 5, 1, 6, 1, PropertyBit, "Expander bell fault", false},
			{"", 6, 1, 0, 1, PropertyBit, "6 digit PIN enabled", false},
			{"", 6, 1, 1, 1, PropertyBit, "Programming token in use", false},
			{"", 6, 1, 2, 1, PropertyBit, "PIN required for local download", false},
			{"", 6, 1, 3, 1, PropertyBit, "Global pulsing buzzer", false},
			{"", 6, 1, 4, 1, PropertyBit, "Global Siren on", false},
			{"", 6, 1, 5, 1, PropertyBit, "Global steady siren", false},
			{"", 6, 1, 6, 1, PropertyBit, "Bus device has line seized", false},
			{"", 6, 1, 7, 1, PropertyBit, "Bus device has requested sniff mode", false},
			{"", 7, 1, 0, 1, PropertyBit, "Dynamic battery test", false},
			{"panel_ac_power_on", 7, 1, 1, 1, PropertyBit, "AC power on", false},
			{"panel_low_battery_memory", 7, 1, 2, 1, PropertyBit, "Low battery memory", false},
			{"", 7, 1, 3, 1, PropertyBit, "Ground fault memory", false},
			{"", 7, 1, 4, 1, PropertyBit, "Fire alarm verification being timed", false},
			{"", 7, 1, 5, 1, PropertyBit, "Smoke power reset", false},
			{"", 7, 1, 6, 1, PropertyBit, "50 Hz line power detected", false},
			{"", 7, 1, 7, 1, PropertyBit, "Timing a high voltage battery charge", false},
			{"", 8, 1, 0, 1, PropertyBit, "Communication since last autotest", false},
			{"", 8, 1, 1, 1, PropertyBit, "Power up delay in progress", false},
			{"", 8, 1, 2, 1, PropertyBit, "Walk test mode", false},
			{"", 8, 1, 3, 1, PropertyBit, "Loss of system time", false},
			{"", 8, 1, 4, 1, PropertyBit, "Enroll requested", false},
			{"", 8, 1, 5, 1, PropertyBit, "Test fixture mode", false},
			{"", 8, 1, 6, 1, PropertyBit, "Control shutdown mode", false},
			{"", 8, 1, 7, 1, PropertyBit, "Timing a cancel window", false},
			{"", 9, 1, 7, 1, PropertyBit, "Call back in progress", false},
			{"", 10, 1, 0, 1, PropertyBit, "Phone line faulted", false},
			{"", 10, 1, 1, 1, PropertyBit, "Voltage present interrupt active", false},
			{"", 10, 1, 2, 1, PropertyBit, "House phone off hook", false},
			{"", 10, 1, 3, 1, PropertyBit, "Phone line monitor enabled", false},
			{"", 10, 1, 4, 1, PropertyBit, "Sniffing", false},
			{"", 10, 1, 5, 1, PropertyBit, "Last read was off hook", false},
			{"", 10, 1, 6, 1, PropertyBit, "Listen in requested", false},
			{"", 10, 1, 7, 1, PropertyBit, "Listen in trigger", false},
			{"", 11, 1, 0, 1, PropertyBit, "Valid partition 1", false},
			{"", 11, 1, 1, 1, PropertyBit, "Valid partition 2", false},
			{"", 11, 1, 2, 1, PropertyBit, "Valid partition 3", false},
			{"", 11, 1, 3, 1, PropertyBit, "Valid partition 4", false},
			{"", 11, 1, 4, 1, PropertyBit, "Valid partition 5", false},
			{"", 11, 1, 5, 1, PropertyBit, "Valid partition 6", false},
			{"", 11, 1, 6, 1, PropertyBit, "Valid partition 7", false},
			{"", 11, 1, 7, 1, PropertyBit, "Valid partition 8", false},
			{"panel_communicator_stack_pointer", 12, 1, 0, 0, PropertyInt, "Communicator stack pointer", false},
		},
	},
	{
		Number:      0x09,
		Key:         "x10_message_received",
		Name:        "X-10 Message Received",
		Description: "This message contains information about an X-10 command that was requested by any device on the system bus.",
		Length:      4,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "House code (0=house A)", false},
			{"", 3, 1, 0, 0, PropertyInt, "Unit code (0=unit 1)", false},
			{"", 4, 1, 0, 0, PropertyInt, "X-10 function code", false},
		},
	},
	{
		Number:      0x0A,
		Key:         "log_event_message",
		Name:        "Log Event Message",
		Description: "This message will contain all information relating to an event in the log memory.",
		Length:      10,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"panel_log_event_number", 2, 1, 0, 0, PropertyInt, "Event number of this message", false},
			{"panel_log_event_size", 3, 1, 0, 0, PropertyInt, "Total log size (number of log entries allowed)", false},
			{"panel_log_event_type", 4, 1, 0, 7, PropertyInt, "Event type", false},
			{"panel_log_event_zud", 5, 1, 0, 0, PropertyInt, "Zone / User / Device number", false},
			{"panel_log_event_partition", 6, 1, 0, 0, PropertyInt, "Partition number (0=partition 1, if relevant)", false},
			{"panel_log_event_month", 7, 1, 0, 0, PropertyInt, "Month (1-12)", false},
			{"panel_log_event_day", 8, 1, 0, 0, PropertyInt, "Day (1-31)", false},
			{"panel_log_event_hour", 9, 1, 0, 0, PropertyInt, "Hour (0-23)", false},
			{"panel_log_event_minute", 10, 1, 0, 0, PropertyInt, "Minute (0-59)", false},
		},
	},
	{
		Number:      0x0B,
		Key:         "keypad_message_received",
		Name:        "Keypad Message Received",
		Description: "This message contains a keystroke from a keypad that is in a Terminal Mode.",
		Length:      3,
		Direction:   DirectionIn,
		Source:      SourceKeypad,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 1, 2, 0, 0, PropertyInt, "Keypad address", false},
			{"keypad_key_pressed", 1, 1, 0, 0, PropertyInt, "Key value", false},
		},
	},
	{
		Number:      0x10,
		Key:         "program_data_reply",
		Name:        "Program Data Reply",
		Description: "This message will contain a system device’s buss address, logical location, and program data that was previously requested (via Program Data Request (3Ch)).",
		Length:      13,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Device’s buss address", false},
			{"", 3, 1, 0, 3, PropertyInt, "Bits 8-11 of logical location", false},
			{"", 3, 1, 4, 4, PropertyInt, "Segment size (0=byte, 1=nibble)", false},
			{"", 3, 1, 5, 1, PropertyBit, "Must be 0", false},
			{"", 3, 1, 6, 6, PropertyInt, "Segment offset (0-none, 1=8 bytes)", false},
			{"", 3, 1, 7, 1, PropertyBit, "Must be 0", false},
			{"", 4, 1, 0, 0, PropertyInt, "Bits 0-7 of logical location", false},
			{"", 5, 1, 0, 4, PropertyInt, "Number of segments in location (0=1 segment)", false},
			{"", 5, 1, 5, 7, PropertyInt, "Data type : 0=Binary 1=Decimal 2=Hexadecimal 3=ASCII 4=unused 5=unused 6=unused 7=unused", false},
			{"", 6, 1, 0, 0, PropertyInt, "Data byte 0", false},
			{"", 7, 1, 0, 0, PropertyInt, "Data byte 1", false},
			{"", 8, 1, 0, 0, PropertyInt, "Data byte 2", false},
			{"", 9, 1, 0, 0, PropertyInt, "Data byte 3", false},
			{"", 10, 1, 0, 0, PropertyInt, "Data byte 4", false},
			{"", 11, 1, 0, 0, PropertyInt, "Data byte 5", false},
			{"", 12, 1, 0, 0, PropertyInt, "Data byte 6", false},
			{"", 13, 1, 0, 0, PropertyInt, "Data byte 7", false},
		},
	},
	{
		Number:      0x12,
		Key:         "user_information_reply",
		Name:        "User Information Reply",
		Description: "This message will contain all digits, attributes and partitions for the requested user PIN number that was previously requested (via User Information Request with(out) PIN (32h,33h)).",
		Length:      7,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "User Number (1=user 1)", false},
			{"", 3, 1, 0, 3, PropertyInt, "PIN digit 1", false},
			{"", 3, 1, 4, 7, PropertyInt, "PIN digit 2", false},
			{"", 4, 1, 0, 3, PropertyInt, "PIN digit 3", false},
			{"", 4, 1, 4, 7, PropertyInt, "PIN digit 4", false},
			{"", 5, 1, 0, 3, PropertyInt, "PIN digit 5 (pad with 0 if 4 digit PIN)", false},
			{"", 5, 1, 4, 7, PropertyInt, "PIN digit 6 (pad with 0 if 4 digit PIN)", false},
			{"", 6, 1, 0, 1, PropertyBit, "Reserved (if bit 7 is clear) || Output 1 enable (if bit 7 is set)", false},
			{"", 6, 1, 1, 1, PropertyBit, "Arm only (if bit 7 is clear) || Output 2 enable (if bit 7 is set)", false},
			{"", 6, 1, 2, 1, PropertyBit, "Arm only (during close window) (if bit 7 is clear) || Output 3 enable (if bit 7 is set)", false},
			{"", 6, 1, 3, 1, PropertyBit, "Master / program (if bit 7 is clear) || Output 4 enable (if bit 7 is set)", false},
			{"", 6, 1, 4, 1, PropertyBit, "Arm / Disarm (if bit 7 is clear) || Arm / Disarm (if bit 7 is set)", false},
			{"", 6, 1, 5, 1, PropertyBit, "Bypass enable (if bit 7 is clear) || Bypass enable (if bit 7 is set)", false},
			{"", 6, 1, 6, 1, PropertyBit, "Open / close report enable (if bit 7 is clear) || Open / close report enable (if bit 7 is set)", false},
			{"", 6, 1, 7, 1, PropertyBit, "Must be a 0 (if bit 7 is clear) || Must be a 1 (if bit 7 is set)", false},
			{"", 7, 1, 0, 1, PropertyBit, "Authorized for partition 1", false},
			{"", 7, 1, 1, 1, PropertyBit, "Authorized for partition 2", false},
			{"", 7, 1, 2, 1, PropertyBit, "Authorized for partition 3", false},
			{"", 7, 1, 3, 1, PropertyBit, "Authorized for partition 4", false},
			{"", 7, 1, 4, 1, PropertyBit, "Authorized for partition 5", false},
			{"", 7, 1, 5, 1, PropertyBit, "Authorized for partition 6", false},
			{"", 7, 1, 6, 1, PropertyBit, "Authorized for partition 7", false},
			{"", 7, 1, 7, 1, PropertyBit, "Authorized for partition 8", false},
		},
	},
	{
		Number:      0x1C,
		Key:         "request_failed",
		Name:        "Command / Request Failed",
		Description: "This message is sent in place of a ‘Positive Acknowledge’ message when a command or request was received properly, but the system was unable to carry out the task correctly. This would normally occur 2.5 seconds after receiving the initial command or request.",
		Length:      1,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
		},
	},
	{
		Number:      0x1D,
		Key:         "positive_acknowledge",
		Name:        "Positive Acknowledge",
		Description: "This message will acknowledge receipt of a message that had the ‘Acknowledge Required’ flag set in the command byte.",
		Length:      1,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
		},
	},
	{
		Number:      0x1E,
		Key:         "negative_acknowledge",
		Name:        "Negative Acknowledge",
		Description: "This message is sent in place of a ‘Positive Acknowledge’ message when the message received was not properly formatted. It will also be sent if an additional message is received before a reply has been returned during the 2.5 second allowable reply period of a previous message. An ‘Implied Negative Acknowledge’ is assumed when no acknowledge is returned with 3 seconds.",
		Length:      1,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
		},
	},
	{
		Number:      0x1F,
		Key:         "message_rejected",
		Name:        "Message Rejected",
		Description: "This message is sent in place of a ‘Positive Acknowledge’ message when the message was received properly formatted, but not supported or disabled.",
		Length:      1,
		Direction:   DirectionIn,
		Source:      SourcePanel,
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
		},
	},
	{
		Number:      0x21,
		Key:         "interface_configuration_request",
		Name:        "Interface Configuration Request",
		Description: "This request will cause the return of the Interface Configuration Message (01h) containing information about the options selected on the interface.",
		Length:      1,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x01, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
		},
	},
	{
		Number:      0x23,
		Key:         "zone_name_request",
		Name:        "Zone Name Request",
		Description: "This request will cause the return of the Zone Name Message (03h) for the zone number that was requested.",
		Length:      2,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x03, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Zone number (0= zone 1)", true},
		},
	},
	{
		Number:      0x24,
		Key:         "zone_status_request",
		Name:        "Zone Status Request",
		Description: "This request will cause the return of the Zone Status Message (04h) for the zone number that was requested.",
		Length:      2,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x04, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"zone_number", 2, 1, 0, 0, PropertyInt, "Zone number (0= zone 1)", true},
		},
	},
	{
		Number:      0x25,
		Key:         "zones_snapshot_request",
		Name:        "Zones Snapshot Request",
		Description: "This request will cause the return of the Zones Snapshot Message (05h) with the group of zones starting at the zone 1 plus the offset value.",
		Length:      2,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x05, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Zone number offset (0= start at zone 1)", true},
		},
	},
	{
		Number:      0x26,
		Key:         "partition_status_request",
		Name:        "Partition Status Request",
		Description: "This request will cause the return of the Partition Status Message (06h) for the partition number that was requested.",
		Length:      2,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x06, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"partition_number", 2, 1, 0, 0, PropertyInt, "Partition number (0= partition 1)", true},
		},
	},
	{
		Number:      0x27,
		Key:         "partitions_snapshot_request",
		Name:        "Partitions Snapshot Request",
		Description: "This request will cause the return of the Partitions Snapshot Message (07h) containing all partitions.",
		Length:      1,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x07, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
		},
	},
	{
		Number:      0x28,
		Key:         "system_status_request",
		Name:        "System Status Request",
		Description: "This request will cause the return of the System Status Message (08h).",
		Length:      1,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x08, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
		},
	},
	{
		Number:      0x29,
		Key:         "send_x_10_message",
		Name:        "Send X-10 Message",
		Description: "This message will contain information about an X-10 command that should be resent on the system bus.",
		Length:      4,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "House code (0=house A) ", true},
			{"", 3, 1, 0, 0, PropertyInt, "Unit code (0=unit 1)", true},
			{"", 4, 1, 0, 0, PropertyInt, "X-10 function code (see table at message # 0Ah)", true},
		},
	},
	{
		Number:      0x2A,
		Key:         "log_event_request",
		Name:        "Log Event Request",
		Description: "This request will cause the return of the Log Event Message (0Ah).",
		Length:      2,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x0A, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"panel_log_event_number", 2, 1, 0, 0, PropertyInt, "Event number requested", true},
		},
	},
	{
		Number:      0x2B,
		Key:         "send_keypad_text_message",
		Name:        "Send Keypad Text Message",
		Description: "This message will contain ASCII text for a specific keypad on the bus that will be displayed during Terminal Mode.",
		Length:      12,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Keypad address", false},
			{"", 3, 1, 0, 0, PropertyInt, "Keypad type", false},
			{"", 4, 1, 0, 0, PropertyInt, "Display storage location", false},
			{"", 5, 1, 0, 0, PropertyInt, "ASCII character for location +0", false},
			{"", 6, 1, 0, 0, PropertyInt, "ASCII character for location +1", false},
			{"", 7, 1, 0, 0, PropertyInt, "ASCII character for location +2", false},
			{"", 8, 1, 0, 0, PropertyInt, "ASCII character for location +3", false},
			{"", 9, 1, 0, 0, PropertyInt, "ASCII character for location +4", false},
			{"", 10, 1, 0, 0, PropertyInt, "ASCII character for location +5", false},
			{"", 11, 1, 0, 0, PropertyInt, "ASCII character for location +6", false},
			{"", 12, 1, 0, 0, PropertyInt, "ASCII character for location +7", false},
		},
	},
	{
		Number:      0x2C,
		Key:         "keypad_terminal_mode_request",
		Name:        "Keypad Terminal Mode Request",
		Description: "This message will contain the address of a keypad that should enter a Terminal Mode for the time contained. Only one keypad should be in the Terminal Mode at a time.",
		Length:      3,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Keypad address", false},
			{"", 3, 1, 0, 0, PropertyInt, "Number of seconds for Terminal Mode", false},
		},
	},
	{
		Number:      0x30,
		Key:         "program_data_request",
		Name:        "Program Data Request",
		Description: "This message will contain a system device’s buss address and the logical location of program data that will be returned in a Program Data Reply message (10h).",
		Length:      4,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x10, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Device’s buss address", false},
			{"", 3, 1, 0, 4, PropertyInt, "Bits 8-11 of logical location", false},
			{"", 3, 1, 4, 2, PropertyBit, "Must be 0", false},
			{"", 3, 1, 6, 1, PropertyBit, "Segment offset (0-none, 1=8 bytes)", false},
			{"", 3, 1, 7, 1, PropertyBit, "Must be 0", false},
			{"", 4, 1, 0, 0, PropertyInt, "Bits 0-7 of logical location", false},
		},
	},
	{
		Number:      0x31,
		Key:         "program_data_command",
		Name:        "Program Data Command",
		Description: "This message will contain a system device’s buss address and the logical location where the included data should be stored.",
		Length:      13,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Device’s buss address", false},
			{"", 3, 1, 0, 4, PropertyBit, "Bits 8-11 of logical location", false},
			{"", 3, 1, 4, 1, PropertyBit, "Segment size (0=byte, 1=nibble)", false},
			{"", 3, 1, 5, 1, PropertyBit, "Must be 1", false},
			{"", 3, 1, 6, 1, PropertyBit, "Segment offset (0-none, 1=8 bytes)", false},
			{"", 3, 1, 7, 1, PropertyBit, "Must be 0", false},
			{"", 4, 1, 0, 0, PropertyInt, "Bits 0-7 of logical location", false},
			{"", 5, 1, 0, 5, PropertyBit, "Number of segments in location (0=1 segment)", false},
			{"", 5, 1, 5, 3, PropertyBit, "Data type: 0=Binary, 1=Decimal, 2=Hexadecimal, 3=ASCII, 4=unused, 5=unused, 6=unused, 7=unused", false},
			{"", 6, 1, 0, 0, PropertyInt, "Data byte 1 to store", false},
			{"", 7, 1, 0, 0, PropertyInt, "Data byte 2 to store", false},
			{"", 8, 1, 0, 0, PropertyInt, "Data byte 3 to store", false},
			{"", 9, 1, 0, 0, PropertyInt, "Data byte 4 to store", false},
			{"", 10, 1, 0, 0, PropertyInt, "Data byte 5 to store", false},
			{"", 11, 1, 0, 0, PropertyInt, "Data byte 6 to store", false},
			{"", 12, 1, 0, 0, PropertyInt, "Data byte 7 to store", false},
			{"", 13, 1, 0, 0, PropertyInt, "Data byte 8 to store", false},
		},
	},
	{
		Number:      0x32,
		Key:         "user_information_request_with_pin",
		Name:        "User Information Request with PIN",
		Description: "This message will contain a user number for which information is being requested and a PIN that will be checked for Master capability before proceeding. The information will be returned in a User Information Reply message (12h).",
		Length:      5,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x12, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 4, PropertyBit, "PIN digit 1", false},
			{"", 2, 1, 4, 4, PropertyBit, "PIN digit 2", false},
			{"", 3, 1, 0, 4, PropertyBit, "PIN digit 3", false},
			{"", 3, 1, 4, 4, PropertyBit, "PIN digit 4", false},
			{"", 4, 1, 0, 4, PropertyBit, "PIN digit 5 (pad with 0 if 4 digit PIN)", false},
			{"", 4, 1, 4, 4, PropertyBit, "PIN digit 6 (pad with 0 if 4 digit PIN)", false},
			{"", 5, 1, 0, 0, PropertyInt, "User number (1=user 1)", false},
		},
	},
	{
		Number:      0x33,
		Key:         "user_information_request_without_pin",
		Name:        "User Information Request without PIN",
		Description: "This message will contain a user number for which information is being requested, no authentication will be performed. The information will be returned in a User Information Reply message (12h).",
		Length:      2,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x12, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "User number (1=user 1)", false},
		},
	},
	{
		Number:      0x34,
		Key:         "set_user_code_command_with_pin",
		Name:        "Set User Code Command with PIN",
		Description: "This message will contain all digits that should be stored as the new code for the designated User number. A PIN will be checked for Master capability before proceeding. A successful programming of the user code will result in the User Information Reply (12h) returned in place of the acknowledge.",
		Length:      8,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x12, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 4, PropertyBit, "PIN digit 1", false},
			{"", 2, 1, 4, 4, PropertyBit, "PIN digit 2", false},
			{"", 3, 1, 0, 4, PropertyBit, "PIN digit 3", false},
			{"", 3, 1, 4, 4, PropertyBit, "PIN digit 4", false},
			{"", 4, 1, 0, 4, PropertyBit, "PIN digit 5 (pad with 0 if 4 digit PIN)", false},
			{"", 4, 1, 4, 4, PropertyBit, "PIN digit 6 (pad with 0 if 4 digit PIN)", false},
			{"", 5, 1, 0, 0, PropertyInt, "User number (1=user 1)", false},
			{"", 6, 1, 0, 4, PropertyBit, "PIN digit 1", false},
			{"", 6, 1, 4, 4, PropertyBit, "PIN digit 2", false},
			{"", 7, 1, 0, 4, PropertyBit, "PIN digit 3", false},
			{"", 7, 1, 4, 4, PropertyBit, "PIN digit 4", false},
			{"", 8, 1, 0, 4, PropertyBit, "PIN digit 5 (pad with 0 if 4 digit PIN)", false},
			{"", 8, 1, 4, 4, PropertyBit, "PIN digit 6 (pad with 0 if 4 digit PIN)", false},
		},
	},
	{
		Number:      0x35,
		Key:         "set_user_code_command_without_pin",
		Name:        "Set User Code Command without PIN",
		Description: "This message will contain all digits that should be stored as the new code for the designated User number. No authentication will be performed. A successful programming of the user code will result in the User Information Reply (12h) returned in place of the acknowledge.",
		Length:      5,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x12, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "User number (1=user 1)", false},
			{"", 3, 1, 0, 4, PropertyBit, "PIN digit 1", false},
			{"", 3, 1, 4, 4, PropertyBit, "PIN digit 2", false},
			{"", 4, 1, 0, 4, PropertyBit, "PIN digit 3", false},
			{"", 4, 1, 4, 4, PropertyBit, "PIN digit 4", false},
			{"", 5, 1, 0, 4, PropertyBit, "PIN digit 5 (pad with 0 if 4 digit PIN)", false},
			{"", 5, 1, 4, 4, PropertyBit, "PIN digit 6 (pad with 0 if 4 digit PIN)", false},
		},
	},
	{
		Number:      0x36,
		Key:         "set_user_authorization_command_with_pin",
		Name:        "Set User Authorization Command with PIN",
		Description: "This message will contain all attributes and partitions that should be stored as the new information for the designated User number. A PIN will be checked for Master capability before proceeding.",
		Length:      7,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 4, PropertyBit, "PIN digit 1", false},
			{"", 2, 1, 4, 4, PropertyBit, "PIN digit 2", false},
			{"", 3, 1, 0, 4, PropertyBit, "PIN digit 3", false},
			{"", 3, 1, 4, 4, PropertyBit, "PIN digit 4", false},
			{"", 4, 1, 0, 4, PropertyBit, "PIN digit 5 (pad with 0 if 4 digit PIN)", false},
			{"", 4, 1, 4, 4, PropertyBit, "PIN digit 6 (pad with 0 if 4 digit PIN)", false},
			{"", 5, 1, 0, 0, PropertyInt, "User number (1=user 1)", false},
			{"", 6, 1, 0, 1, PropertyBit, "Reserved (if bit 7 is clear) || Output 1 enable (if bit 7 is set)", false},
			{"", 6, 1, 1, 1, PropertyBit, "Arm only (if bit 7 is clear) || Output 2 enable (if bit 7 is set)", false},
			{"", 6, 1, 2, 1, PropertyBit, "Arm only (during close window) (if bit 7 is clear) || Output 3 enable (if bit 7 is set)", false},
			{"", 6, 1, 3, 1, PropertyBit, "Master / program (if bit 7 is clear) || Output 4 enable (if bit 7 is set)", false},
			{"", 6, 1, 4, 1, PropertyBit, "Arm / Disarm (if bit 7 is clear) || Arm / Disarm (if bit 7 is set)", false},
			{"", 6, 1, 5, 1, PropertyBit, "Bypass enable (if bit 7 is clear) || Bypass enable (if bit 7 is set)", false},
			{"", 6, 1, 6, 1, PropertyBit, "Open / close report enable (if bit 7 is clear) || Open / close report enable (if bit 7 is set)", false},
			{"", 6, 1, 7, 1, PropertyBit, "Must be a 0 (if bit 7 is clear) || Must be a 1 (if bit 7 is set)", false},
			{"", 7, 1, 0, 1, PropertyBit, "Authorized for partition 1", false},
			{"", 7, 1, 1, 1, PropertyBit, "Authorized for partition 2", false},
			{"", 7, 1, 2, 1, PropertyBit, "Authorized for partition 3", false},
			{"", 7, 1, 3, 1, PropertyBit, "Authorized for partition 4", false},
			{"", 7, 1, 4, 1, PropertyBit, "Authorized for partition 5", false},
			{"", 7, 1, 5, 1, PropertyBit, "Authorized for partition 6", false},
			{"", 7, 1, 6, 1, PropertyBit, "Authorized for partition 7", false},
			{"", 7, 1, 7, 1, PropertyBit, "Authorized for partition 8", false},
		},
	},
	{
		Number:      0x37,
		Key:         "set_user_authorization_command_without_pin",
		Name:        "Set User Authorization Command without PIN",
		Description: "This message will contain all attributes and partitions that should be stored as the new information for the designated User number. No authentication will be performed.",
		Length:      4,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "User number (1=user 1)", false},
			{"", 3, 1, 0, 1, PropertyBit, "Reserved (if bit 7 is clear) || Output 1 enable (if bit 7 is set)", false},
			{"", 3, 1, 1, 1, PropertyBit, "Arm only (if bit 7 is clear) || Output 2 enable (if bit 7 is set)", false},
			{"", 3, 1, 2, 1, PropertyBit, "Arm only (during close window) (if bit 7 is clear) || Output 3 enable (if bit 7 is set)", false},
			{"", 3, 1, 3, 1, PropertyBit, "Master / program (if bit 7 is clear) || Output 4 enable (if bit 7 is set)", false},
			{"", 3, 1, 4, 1, PropertyBit, "Arm / Disarm (if bit 7 is clear) || Arm / Disarm (if bit 7 is set)", false},
			{"", 3, 1, 5, 1, PropertyBit, "Bypass enable (if bit 7 is clear) || Bypass enable (if bit 7 is set)", false},
			{"", 3, 1, 6, 1, PropertyBit, "Open / close report enable (if bit 7 is clear) || Open / close report enable (if bit 7 is set)", false},
			{"", 3, 1, 7, 1, PropertyBit, "Must be a 0 (if bit 7 is clear) || Must be a 1 (if bit 7 is set)", false},
			{"", 4, 1, 0, 1, PropertyBit, "Authorized for partition 1", false},
			{"", 4, 1, 1, 1, PropertyBit, "Authorized for partition 2", false},
			{"", 4, 1, 2, 1, PropertyBit, "Authorized for partition 3", false},
			{"", 4, 1, 3, 1, PropertyBit, "Authorized for partition 4", false},
			{"", 4, 1, 4, 1, PropertyBit, "Authorized for partition 5", false},
			{"", 4, 1, 5, 1, PropertyBit, "Authorized for partition 6", false},
			{"", 4, 1, 6, 1, PropertyBit, "Authorized for partition 7", false},
			{"", 4, 1, 7, 1, PropertyBit, "Authorized for partition 8", false},
		},
	},
	{
		Number:      0x3A,
		Key:         "store_communication_event_command",
		Name:        "Store Communication Event Command",
		Description: "This message will submit an event to the control’s communication stack for possible transmission over its telephone or alternate communications path.",
		Length:      6,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
	},
	{
		Number:      0x3B,
		Key:         "set_clock_calendar_command",
		Name:        "Set Clock / Calendar Command",
		Description: "This message will set the clock / calendar in the system.",
		Length:      7,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Year (00-99)", false},
			{"", 3, 1, 0, 0, PropertyInt, "Month (1-12)", false},
			{"", 4, 1, 0, 0, PropertyInt, "Day (1-31)", false},
			{"", 5, 1, 0, 0, PropertyInt, "Hour (0-23)", false},
			{"", 6, 1, 0, 0, PropertyInt, "Minute (0-59)", false},
			{"", 7, 1, 0, 0, PropertyInt, "Day", false},
		},
	},
	{
		Number:      0x3C,
		Key:         "primary_keypad_function_with_pin",
		Name:        "Primary Keypad Function with PIN",
		Description: "This message will contain a value that defines with function to perform, the partitions to use and a PIN value for the validation.",
		Length:      6,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 4, PropertyBit, "PIN digit 1", false},
			{"", 2, 1, 4, 4, PropertyBit, "PIN digit 2", false},
			{"", 3, 1, 0, 4, PropertyBit, "PIN digit 3", false},
			{"", 3, 1, 4, 4, PropertyBit, "PIN digit 4", false},
			{"", 4, 1, 0, 4, PropertyBit, "PIN digit 5 (pad with 0 if 4 digit PIN)", false},
			{"", 4, 1, 4, 4, PropertyBit, "PIN digit 6 (pad with 0 if 4 digit PIN)", false},
			{"", 5, 1, 0, 0, PropertyInt, "Keypad function [00h Turn off any sounder or alarm, 01h Disarm, 02h Arm in away mode, 03h Arm in stay mode, 04h Cancel, 05h Initiate auto-arm, 06h Start walk-test mode, 07h Stop walk-test mode, 08h-FFh Reserved]", false},
			{"", 6, 1, 0, 1, PropertyBit, "Perform on partition 1 (if PIN has access)", false},
			{"", 6, 1, 1, 1, PropertyBit, "Perform on partition 2 (if PIN has access)", false},
			{"", 6, 1, 2, 1, PropertyBit, "Perform on partition 3 (if PIN has access)", false},
			{"", 6, 1, 3, 1, PropertyBit, "Perform on partition 4 (if PIN has access)", false},
			{"", 6, 1, 4, 1, PropertyBit, "Perform on partition 5 (if PIN has access)", false},
			{"", 6, 1, 5, 1, PropertyBit, "Perform on partition 6 (if PIN has access)", false},
			{"", 6, 1, 6, 1, PropertyBit, "Perform on partition 7 (if PIN has access)", false},
			{"", 6, 1, 7, 1, PropertyBit, "Perform on partition 8 (if PIN has access)", false},
		},
	},
	{
		Number:      0x3D,
		Key:         "primary_keypad_function_without_pin",
		Name:        "Primary Keypad Function without PIN",
		Description: "This message will contain a value that defines with function to perform, the partitions and user number to assign to the function.",
		Length:      4,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Keypad function [00h Turn off any sounder or alarm, 01h Disarm, 02h Arm in away mode, 03h Arm in stay mode, 04h Cancel, 05h Initiate auto-arm, 06h Start walk-test mode, 07h Stop walk-test mode, 08h-FFh Reserved]", false},
			{"", 3, 1, 0, 1, PropertyBit, "Perform on partition 1 (if PIN has access)", false},
			{"", 3, 1, 1, 1, PropertyBit, "Perform on partition 2 (if PIN has access)", false},
			{"", 3, 1, 2, 1, PropertyBit, "Perform on partition 3 (if PIN has access)", false},
			{"", 3, 1, 3, 1, PropertyBit, "Perform on partition 4 (if PIN has access)", false},
			{"", 3, 1, 4, 1, PropertyBit, "Perform on partition 5 (if PIN has access)", false},
			{"", 3, 1, 5, 1, PropertyBit, "Perform on partition 6 (if PIN has access)", false},
			{"", 3, 1, 6, 1, PropertyBit, "Perform on partition 7 (if PIN has access)", false},
			{"", 3, 1, 7, 1, PropertyBit, "Perform on partition 8 (if PIN has access)", false},
			{"", 1, 1, 0, 0, PropertyInt, "User number", false},
		},
	},
	{
		Number:      0x3E,
		Key:         "secondary_keypad_function",
		Name:        "Secondary Keypad Function",
		Description: "This message will contain a value that defines with function to perform, and the partitions to use.",
		Length:      3,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Keypad function [00h Stay (1 button arm / toggle interiors), 01h Chime (toggle chime mode), 02h Exit (1 button arm / toggle instant), 03h Bypass interiors, 04h Fire panic, 05h Medical panic, 06h Police panic, 07h Smoke detector reset, 08h Auto callback download, 09h Manual pickup download, 0Ah Enable silent exit (for this arm cycle), 0Bh Perform test, 0Ch Group bypass, 0Dh Auxiliary function 1, 0Eh Auxiliary function 2, 0Fh Start keypad sounder, 10h-FFh Reserved]", false},
			{"", 3, 1, 0, 1, PropertyBit, "Perform on partition 1", false},
			{"", 3, 1, 1, 1, PropertyBit, "Perform on partition 2", false},
			{"", 3, 1, 2, 1, PropertyBit, "Perform on partition 3", false},
			{"", 3, 1, 3, 1, PropertyBit, "Perform on partition 4", false},
			{"", 3, 1, 4, 1, PropertyBit, "Perform on partition 5", false},
			{"", 3, 1, 5, 1, PropertyBit, "Perform on partition 6", false},
			{"", 3, 1, 6, 1, PropertyBit, "Perform on partition 7", false},
			{"", 3, 1, 7, 1, PropertyBit, "Perform on partition 8", false},
		},
	},
	{
		Number:      0x3F,
		Key:         "zone_bypass_toggle",
		Name:        "Zone Bypass Toggle",
		Description: "This message will contain a number of a zone that should be (un)bypassed.",
		Length:      2,
		Direction:   DirectionOut,
		Source:      SourceNone,
		Replies:     []byte{0x1D, 0x1C, 0x1F},
		Properties: []Property{
			{"", 1, 1, 0, 0, PropertyInt, "Message number", false},
			{"", 2, 1, 0, 0, PropertyInt, "Zone number (0= zone 1)", false},
		},
	},
}
